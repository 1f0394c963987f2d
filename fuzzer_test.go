package filelist_test

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/alecthomas/assert/v2"
	"github.com/alecthomas/repr"

	"github.com/sv-explorer/filelist"
)

const (
	pathStart = "./_abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
	pathRest  = pathStart + "0123456789"
)

func fuzzPath(r *rand.Rand) string {
	out := []byte{pathStart[r.Intn(len(pathStart))]}
	for i := r.Intn(12); i > 0; i-- {
		out = append(out, pathRest[r.Intn(len(pathRest))])
	}
	return string(out)
}

func fuzzSpace(r *rand.Rand) string {
	return strings.Repeat(" \t"[r.Intn(2):r.Intn(2)+1], r.Intn(3))
}

// fuzzLine generates a valid directive along with the command it must parse to.
func fuzzLine(r *rand.Rand) (string, filelist.Command) {
	path := fuzzPath(r)
	switch r.Intn(5) {
	case 0:
		name := fuzzPath(r)
		switch r.Intn(3) {
		case 0:
			return "+define+" + fuzzSpace(r) + name, filelist.Define{Name: name}
		case 1:
			return "+define+" + name + fuzzSpace(r) + "=" + fuzzSpace(r) + path, filelist.Define{Name: name, Value: value(path)}
		default:
			return "+define+" + name + `="` + path + `"`, filelist.Define{Name: name, Value: value(path)}
		}
	case 1:
		return "+incdir+" + fuzzSpace(r) + path, filelist.Include{Directory: path}
	case 2:
		return "-v " + fuzzSpace(r) + path, filelist.LibraryFile{Path: path}
	case 3:
		return "-y " + fuzzSpace(r) + path, filelist.LibraryDir{Path: path}
	default:
		return fuzzSpace(r) + path + fuzzSpace(r), filelist.File{Path: path}
	}
}

func TestFuzzValidLines(t *testing.T) {
	r := rand.New(rand.NewSource(0))
	for i := 0; i < 2000; i++ {
		line, expected := fuzzLine(r)
		if r.Intn(4) == 0 {
			line += " # " + fuzzPath(r)
		}
		cmd, err := filelist.ParseLine(line)
		if err != nil {
			t.Fatalf("error parsing %s: %s", repr.String(line), err)
		}
		assert.Equal(t, expected, cmd, line)
	}
}

func FuzzParseLine(f *testing.F) {
	for _, seed := range []string{
		"+define+A", "+define+A=b", `+define+A="b"`, "+define+", "+define+A=",
		"+incdir+../sv/", "-v lib.v", "-y dir", "file.sv", "# comment", "",
		"a b", "-v -y", `"`, "=", "+define+A=1", "\x00", "é",
	} {
		f.Add(seed)
	}
	f.Fuzz(func(t *testing.T, line string) {
		cmd, err := filelist.ParseLine(line)
		if err != nil {
			if filelist.KindOf(err) == filelist.UnknownError {
				t.Fatalf("untyped error for %q: %s", line, err)
			}
			return
		}
		again, err := filelist.ParseLine(cmd.String())
		if err != nil {
			t.Fatalf("%q rendered as %q which fails: %s", line, cmd.String(), err)
		}
		assert.Equal(t, cmd, again)
	})
}
