package download

// Artifact is one installer on the downloads page. DownloadURL is filled in
// per request when a presigner is configured.
type Artifact struct {
	Name        string `json:"name"`
	Platform    string `json:"platform"`
	Version     string `json:"version"`
	ObjectKey   string `json:"objectKey"`
	DownloadURL string `json:"downloadUrl,omitempty"`
}

// Catalog returns the installer artifacts offered on the downloads page.
func Catalog() []Artifact {
	return []Artifact{
		{
			Name:      "Backup Agent for Windows",
			Platform:  "windows",
			Version:   "2.4.1",
			ObjectKey: "installers/backup-agent-2.4.1-windows-x64.msi",
		},
		{
			Name:      "Backup Agent for macOS",
			Platform:  "darwin",
			Version:   "2.4.1",
			ObjectKey: "installers/backup-agent-2.4.1-darwin-arm64.pkg",
		},
		{
			Name:      "Backup Agent for Linux",
			Platform:  "linux",
			Version:   "2.4.1",
			ObjectKey: "installers/backup-agent-2.4.1-linux-amd64.deb",
		},
	}
}
