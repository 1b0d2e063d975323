package bench

import "iniharness/internal/domain"

// Fixture documents shared by the parse and write scenarios.
var (
	SimpleINI = domain.FixtureDocument{
		Name: "simple",
		Text: `[Database]
host = localhost
port = 5432
user = admin

[Server]
debug = true
timeout = 30
`,
	}

	MultipleSectionsINI = domain.FixtureDocument{
		Name: "multiple",
		Text: `[Application]
name = MyApp
version = 1.0.0

[Window]
width = 1024
height = 768

[Database]
server = localhost
port = 5432

[Logging]
level = INFO
file = /var/log/app.log
`,
	}

	LargeINI = domain.FixtureDocument{
		Name: "large",
		Text: `[Section1]
key1 = value1
key2 = value2
key3 = value3
key4 = value4
key5 = value5

[Section2]
key1 = value1
key2 = value2
key3 = value3
key4 = value4
key5 = value5

[Section3]
key1 = value1
key2 = value2
key3 = value3
key4 = value4
key5 = value5
`,
	}
)
