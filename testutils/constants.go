package testutils

// Various constant defined for to obtain dummy data for tests
const (
	ApplicationConfigPath = "/testutils/testdata/sample_config.json" // ApplicationConfigPath points to dummy config file in json format for CoverallsConfig
	GoProfilePath         = "/testutils/testdata/cover.out"          // GoProfilePath points to a go cover profile of the sample module
	LCOVProfilePath       = "/testutils/testdata/lcov.info"          // LCOVProfilePath points to an lcov tracefile of the sample module
	SampleModuleDir       = "/testutils/testdata/samplemod"          // SampleModuleDir is the root of the sample module
)
