package filelist

// LibraryKind distinguishes library files from library search directories.
type LibraryKind string

const (
	// LibraryFileKind is a "-v" library file.
	LibraryFileKind LibraryKind = "-v"
	// LibraryDirKind is a "-y" library search directory.
	LibraryDirKind LibraryKind = "-y"
)

// Library is a recorded "-v" or "-y" directive. It is never expanded.
type Library struct {
	Kind LibraryKind `json:"kind" yaml:"kind"`
	Path string      `json:"path" yaml:"path"`
}

// Result of aggregating a filelist.
//
// Each slice keeps the order in which its directives appeared. Defines are
// recorded as "NAME" or "NAME=VALUE".
type Result struct {
	Defines   []string  `json:"defines" yaml:"defines"`
	Includes  []string  `json:"includes" yaml:"includes"`
	Files     []string  `json:"files" yaml:"files"`
	Libraries []Library `json:"libraries" yaml:"libraries"`
}

func (r *Result) add(cmd Command) {
	switch cmd := cmd.(type) {
	case Define:
		r.Defines = append(r.Defines, cmd.Macro())
	case Include:
		r.Includes = append(r.Includes, cmd.Directory)
	case File:
		r.Files = append(r.Files, cmd.Path)
	case LibraryFile:
		r.Libraries = append(r.Libraries, Library{Kind: LibraryFileKind, Path: cmd.Path})
	case LibraryDir:
		r.Libraries = append(r.Libraries, Library{Kind: LibraryDirKind, Path: cmd.Path})
	default:
		panic("unsupported command type " + cmd.String())
	}
}

// LibraryFiles returns the paths of all "-v" entries in order.
func (r *Result) LibraryFiles() []string {
	return r.libraries(LibraryFileKind)
}

// LibraryDirs returns the paths of all "-y" entries in order.
func (r *Result) LibraryDirs() []string {
	return r.libraries(LibraryDirKind)
}

func (r *Result) libraries(kind LibraryKind) []string {
	var out []string
	for _, lib := range r.Libraries {
		if lib.Kind == kind {
			out = append(out, lib.Path)
		}
	}
	return out
}

// Merge appends the entries of other to r, category by category.
func (r *Result) Merge(other *Result) {
	r.Defines = append(r.Defines, other.Defines...)
	r.Includes = append(r.Includes, other.Includes...)
	r.Files = append(r.Files, other.Files...)
	r.Libraries = append(r.Libraries, other.Libraries...)
}

// Args renders the result as a flat tool argument list: defines, include
// directories, libraries and finally files.
func (r *Result) Args() []string {
	args := make([]string, 0, len(r.Defines)+len(r.Includes)+2*len(r.Libraries)+len(r.Files))
	for _, define := range r.Defines {
		args = append(args, "+define+"+define)
	}
	for _, dir := range r.Includes {
		args = append(args, "+incdir+"+dir)
	}
	for _, lib := range r.Libraries {
		args = append(args, string(lib.Kind), lib.Path)
	}
	return append(args, r.Files...)
}
