package filelist

// A Command is the parsed form of one filelist directive.
//
// The concrete types are Define, Include, LibraryFile, LibraryDir and File.
// String renders the command back into directive syntax.
type Command interface {
	String() string
	command()
}

// Define is a preprocessor define, "+define+NAME" or "+define+NAME=VALUE".
//
// Value is nil when no value was given. A quoted value is stored without its quotes.
type Define struct {
	Name  string
	Value *string
}

func (Define) command() {}

// Macro renders the define as "NAME" or "NAME=VALUE".
func (d Define) Macro() string {
	if d.Value == nil {
		return d.Name
	}
	return d.Name + "=" + *d.Value
}

func (d Define) String() string { return "+define+" + d.Macro() }

// Include is an include directory, "+incdir+PATH".
type Include struct {
	Directory string
}

func (Include) command() {}

func (i Include) String() string { return "+incdir+" + i.Directory }

// LibraryFile is a library file, "-v PATH".
type LibraryFile struct {
	Path string
}

func (LibraryFile) command() {}

func (l LibraryFile) String() string { return "-v " + l.Path }

// LibraryDir is a library search directory, "-y PATH".
type LibraryDir struct {
	Path string
}

func (LibraryDir) command() {}

func (l LibraryDir) String() string { return "-y " + l.Path }

// File is a bare source file path.
type File struct {
	Path string
}

func (File) command() {}

func (f File) String() string { return f.Path }
