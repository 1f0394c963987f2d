package filelist

import (
	"fmt"
	"strconv"

	"github.com/alecthomas/repr"
)

func (p *Parser) traceLine(filename string, index int, text string, cmd Command, err error) {
	if p.trace == nil {
		return
	}
	prefix := strconv.Itoa(index + 1)
	if filename != "" {
		prefix = filename + ":" + prefix
	}
	switch {
	case err != nil:
		fmt.Fprintf(p.trace, "%s: %q !! %s\n", prefix, text, err)
	case cmd == nil:
		fmt.Fprintf(p.trace, "%s: %q\n", prefix, text)
	default:
		fmt.Fprintf(p.trace, "%s: %q -> %s\n", prefix, text, repr.String(cmd))
	}
}
