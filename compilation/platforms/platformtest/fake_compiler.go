package platformtest

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// FakeCompiler is a platforms.Compiler which returns a canned standard JSON output instead of invoking a compiler
// executable. It records every input it was provided.
type FakeCompiler struct {
	// Output is returned from every CompileStandardJSON call.
	Output []byte

	// Err, if non-nil, is returned from every CompileStandardJSON call instead of Output.
	Err error

	// Inputs records the standard JSON inputs provided to CompileStandardJSON, in call order.
	Inputs [][]byte
}

// NewFakeCompiler returns a FakeCompiler which responds with the provided output.
func NewFakeCompiler(output string) *FakeCompiler {
	return &FakeCompiler{Output: []byte(output)}
}

// CompileStandardJSON records the input and returns the canned output.
func (f *FakeCompiler) CompileStandardJSON(input []byte) ([]byte, error) {
	f.Inputs = append(f.Inputs, input)
	if f.Err != nil {
		return nil, f.Err
	}
	return f.Output, nil
}

// Platform returns the platform identifier of the fake compiler.
func (f *FakeCompiler) Platform() string {
	return "fake"
}

// LastInput returns the most recent input provided to CompileStandardJSON, or nil if it was never called.
func (f *FakeCompiler) LastInput() []byte {
	if len(f.Inputs) == 0 {
		return nil
	}
	return f.Inputs[len(f.Inputs)-1]
}

// FakeContract describes a contract emitted by a canned compiler output.
type FakeContract struct {
	Abi      string
	Bytecode string
}

// SuccessOutput builds a standard JSON output emitting the provided contracts under sourceName, along with any
// provided diagnostics.
func SuccessOutput(sourceName string, contracts map[string]FakeContract, diagnostics ...string) string {
	names := make([]string, 0, len(contracts))
	for name := range contracts {
		names = append(names, name)
	}
	sort.Strings(names)

	entries := make([]string, 0, len(names))
	for _, name := range names {
		contract := contracts[name]
		entries = append(entries, fmt.Sprintf(`%s:{"abi":%s,"evm":{"bytecode":{"object":%s}}}`,
			quote(name), contract.Abi, quote(contract.Bytecode)))
	}
	return fmt.Sprintf(`{"errors":[%s],"contracts":{%s:{%s}},"sources":{%s:{"id":0}}}`,
		strings.Join(diagnostics, ","), quote(sourceName), strings.Join(entries, ","), quote(sourceName))
}

// FailureOutput builds a standard JSON output reporting only the provided diagnostics.
func FailureOutput(diagnostics ...string) string {
	return fmt.Sprintf(`{"errors":[%s]}`, strings.Join(diagnostics, ","))
}

// Diagnostic builds a standard JSON diagnostic entry.
func Diagnostic(severity string, kind string, message string, formattedMessage string) string {
	return fmt.Sprintf(`{"severity":%s,"type":%s,"component":"general","message":%s,"formattedMessage":%s}`,
		quote(severity), quote(kind), quote(message), quote(formattedMessage))
}

func quote(s string) string {
	b, _ := json.Marshal(s)
	return string(b)
}
