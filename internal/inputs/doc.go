// Package inputs reads remapper inputs from an environment.
//
// Every variable named <prefix><NAME> is a user input: NAME is its dot-path
// and the value is parsed with value.Parse. Variables named <prefix>__<NAME>
// are control parameters (depth, case, deep casing); their names are
// camel-cased, so INPUT___DEEP_CASING configures deepCasing.
package inputs
