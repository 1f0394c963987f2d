package filelist_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/alecthomas/assert/v2"

	"github.com/sv-explorer/filelist"
)

func TestMap(t *testing.T) {
	upper := func(cmd filelist.Command) (filelist.Command, error) {
		if define, ok := cmd.(filelist.Define); ok {
			define.Name = strings.ToUpper(define.Name)
			return define, nil
		}
		return cmd, nil
	}
	p := filelist.MustNew(filelist.Map(upper))
	cmd, err := p.ParseLine("+define+gate_sim")
	assert.NoError(t, err)
	assert.Equal[filelist.Command](t, filelist.Define{Name: "GATE_SIM"}, cmd)

	result, err := p.ParseLines([]string{"+define+a=b", "x.sv"})
	assert.NoError(t, err)
	assert.Equal(t, &filelist.Result{Defines: []string{"A=b"}, Files: []string{"x.sv"}}, result)
}

func TestMapError(t *testing.T) {
	reject := errors.New("no library files allowed")
	p := filelist.MustNew(filelist.Map(func(cmd filelist.Command) (filelist.Command, error) {
		if _, ok := cmd.(filelist.LibraryFile); ok {
			return nil, reject
		}
		return cmd, nil
	}))
	result, err := p.ParseString("list.f", "a.sv\n-v lib.v\nb.sv\n")
	assert.IsError(t, err, reject)
	assert.EqualError(t, err, "list.f:2: no library files allowed")
	assert.Equal(t, filelist.UnknownError, filelist.KindOf(err))
	assert.Equal(t, &filelist.Result{Files: []string{"a.sv"}}, result)
}

func TestMapNilCommand(t *testing.T) {
	p := filelist.MustNew(filelist.Map(func(cmd filelist.Command) (filelist.Command, error) {
		return nil, nil
	}))
	_, err := p.ParseLine("a.sv")
	assert.EqualError(t, err, "mapper returned a nil command")
}

func TestResolveRelative(t *testing.T) {
	p := filelist.MustNew(filelist.ResolveRelative("/work/lists"))
	result, err := p.ParseLines([]string{
		"+define+PATH=./x",
		"+incdir+../sv/",
		"../sv/adder.sv",
		"/abs/file.sv",
		"-v lib/old.v",
		"-y ./cells/",
	})
	assert.NoError(t, err)
	assert.Equal(t, &filelist.Result{
		Defines:  []string{"PATH=./x"},
		Includes: []string{"/work/sv/"},
		Files:    []string{"/work/sv/adder.sv", "/abs/file.sv"},
		Libraries: []filelist.Library{
			{Kind: filelist.LibraryFileKind, Path: "/work/lists/lib/old.v"},
			{Kind: filelist.LibraryDirKind, Path: "/work/lists/cells/"},
		},
	}, result)
}

func TestMappersApplyInOrder(t *testing.T) {
	suffix := func(s string) filelist.Mapper {
		return func(cmd filelist.Command) (filelist.Command, error) {
			if file, ok := cmd.(filelist.File); ok {
				file.Path += s
				return file, nil
			}
			return cmd, nil
		}
	}
	p := filelist.MustNew(filelist.Map(suffix(".a")), filelist.Map(suffix(".b"), suffix(".c")))
	cmd, err := p.ParseLine("x")
	assert.NoError(t, err)
	assert.Equal[filelist.Command](t, filelist.File{Path: "x.a.b.c"}, cmd)
}
