// Package updater checks GitHub for newer releases of the server binary.
// The check is best-effort: it runs in the background during "serve" and
// any failure simply means no notice is printed.
package updater

import (
	"strings"
	"time"

	"resty.dev/v3"
)

const (
	githubRepo = "ayyazzafar/clickup-mcp-server"

	releaseURL = "https://api.github.com/repos/" + githubRepo + "/releases/latest"

	checkTimeout = 10 * time.Second
)

// releaseEndpoint is a var so tests can point the check at a local server.
var releaseEndpoint = releaseURL

type releaseInfo struct {
	TagName string `json:"tag_name"`
	HTMLURL string `json:"html_url"`
}

// Result describes the outcome of a version check.
type Result struct {
	CurrentVersion  string
	LatestVersion   string
	UpdateAvailable bool
	ReleaseURL      string
}

// CheckVersion queries GitHub for the latest release and compares it with
// the running version. It never returns an error: a failed check reports
// no update.
func CheckVersion(currentVersion string) Result {
	result := Result{CurrentVersion: normalize(currentVersion)}

	client := resty.New().SetTimeout(checkTimeout)
	defer client.Close()

	var release releaseInfo
	res, err := client.R().
		SetHeader("Accept", "application/vnd.github.v3+json").
		SetHeader("User-Agent", "clickup-mcp-server/"+currentVersion).
		SetResult(&release).
		Get(releaseEndpoint)
	if err != nil || res.IsError() {
		return result
	}

	result.LatestVersion = normalize(release.TagName)
	result.ReleaseURL = release.HTMLURL
	result.UpdateAvailable = isNewer(result.CurrentVersion, result.LatestVersion)
	return result
}

func normalize(v string) string {
	return strings.TrimPrefix(v, "v")
}

// isNewer compares two dotted versions numerically, part by part. Dev
// builds never report an available update.
func isNewer(current, latest string) bool {
	if current == "" || latest == "" || current == "dev" {
		return false
	}

	cur := strings.Split(current, ".")
	lat := strings.Split(latest, ".")
	for len(cur) < 3 {
		cur = append(cur, "0")
	}
	for len(lat) < 3 {
		lat = append(lat, "0")
	}

	for i := 0; i < 3; i++ {
		c := parseIntSafe(cur[i])
		l := parseIntSafe(lat[i])
		if l != c {
			return l > c
		}
	}
	return false
}

// parseIntSafe reads the leading digits of s, returning 0 when there are none.
func parseIntSafe(s string) int {
	n := 0
	for _, ch := range s {
		if ch < '0' || ch > '9' {
			break
		}
		n = n*10 + int(ch-'0')
	}
	return n
}
