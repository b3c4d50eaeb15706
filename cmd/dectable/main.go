// Dectable compiles boolean rule expressions into DMN decision tables.
//
// Rules are described in a YAML file: decision metadata, parameter types and
// labels, output columns, and one or more rules whose criteria use the
// flat-record expression encoding (plain or base64).
//
// Usage:
//
//	# Validate the expressions in a rule file
//	dectable validate -f rules.yaml
//
//	# Render rule expressions in a target notation
//	dectable render -f rules.yaml --notation feel
//
//	# Generate the DMN document
//	dectable generate -f rules.yaml -o approval.dmn
//
//	# Decode a base64 transport string to readable form
//	dectable decode "LCgsYW1vdW50..."
package main

func main() {
	Execute()
}
