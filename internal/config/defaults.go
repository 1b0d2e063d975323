package config

import "time"

const (
	// DefaultProjectName is shown in the test suite header
	DefaultProjectName = "mojo-ini"
	// DefaultInterpreter runs a single test file
	DefaultInterpreter = "mojo"
	// DefaultIncludeDir is passed to the interpreter with -I
	DefaultIncludeDir = "src"
	// DefaultTestsDir holds the test_* files, relative to the project root
	DefaultTestsDir = "tests"
	// DefaultTestPrefix is the discovery prefix of a test file name
	DefaultTestPrefix = "test_"
	// DefaultTestExtension is the source-file extension of a test file
	DefaultTestExtension = ".mojo"
	// DefaultTimeout bounds a single test file execution
	DefaultTimeout = 30 * time.Second
	// DefaultLogLevel keeps stdout reserved for the report
	DefaultLogLevel = "warn"
	// DefaultBenchLabel names the reference implementation in the report
	DefaultBenchLabel = "go-ini (gopkg.in/ini.v1)"
	// ConfigFileName is the optional YAML file read from the project root
	ConfigFileName = "iniharness.yaml"
)
