// Package misc keeps build time information about the program.
package misc

// These are set with -ldflags "-X logicss/misc.version=..." during release
// builds.
var (
	appName = "logicss"
	version = "dev"
	gitHash = "unknown"
)

func GetAppName() string {
	return appName
}

func GetVersion() string {
	return version
}

func GetGitHash() string {
	return gitHash
}
