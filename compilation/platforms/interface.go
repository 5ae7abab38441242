package platforms

// Compiler describes a compiler capability which accepts a serialized standard JSON compilation request and returns
// the serialized standard JSON output.
type Compiler interface {
	// CompileStandardJSON submits the serialized request to the compiler and returns its serialized output. Source
	// errors are reported within the output rather than as an error; an error is returned only if the compiler
	// could not be invoked.
	CompileStandardJSON(input []byte) ([]byte, error)

	// Platform returns the identifier of the compiler backend.
	Platform() string
}
