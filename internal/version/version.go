package version

// Set at build time via -ldflags.
var (
	Version   = "dev"
	Commit    = "dev"
	BuildDate = "dev"
)

// Info describes build metadata, surfaced by initialize and the --version
// flag.
type Info struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	BuildDate string `json:"buildDate"`
}

// Get returns version info, defaulting empty fields to "dev".
func Get() Info {
	return Info{
		Version:   orDev(Version),
		Commit:    orDev(Commit),
		BuildDate: orDev(BuildDate),
	}
}

func orDev(v string) string {
	if v == "" {
		return "dev"
	}
	return v
}
