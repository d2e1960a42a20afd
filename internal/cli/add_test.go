package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lictool"
	"lictool/spdx"
)

func writeJSON(t *testing.T, w io.Writer, v any) {
	t.Helper()
	require.NoError(t, json.NewEncoder(w).Encode(v))
}

// newRegistryServer serves a single-license registry whose details record
// carries the given license text.
func newRegistryServer(t *testing.T, id, text string) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	mux.HandleFunc("/licenses/licenses.json", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, `{"licenseListVersion":"1","licenses":[
			{"licenseId":%q,"detailsUrl":%q,"isDeprecatedLicenseId":false,"isOsiApproved":true}
		]}`, id, srv.URL+"/licenses/"+id+".json")
	})
	mux.HandleFunc("/licenses/"+id+".json", func(w http.ResponseWriter, r *http.Request) {
		payload := map[string]any{
			"licenseId":             id,
			"name":                  id + " License",
			"licenseText":           text,
			"seeAlso":               []string{},
			"isDeprecatedLicenseId": false,
			"isOsiApproved":         true,
		}
		writeJSON(t, w, payload)
	})
	return srv
}

func runRoot(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), err
}

func TestAdd_RendersYearEndToEnd(t *testing.T) {
	color.NoColor = true
	text := "Copyright (c) [yyyy] Holder.\n\nAll rights reserved.\n"
	srv := newRegistryServer(t, "Test-1.0", text)
	path := filepath.Join(t.TempDir(), "LICENSE.md")

	out, err := runRoot(t, "add", "Test-1.0",
		"--year", "2024",
		"--path", path,
		"--registry-url", srv.URL,
		"--cache-dir", t.TempDir(),
	)
	require.NoError(t, err)
	assert.Contains(t, out, "Successfully created")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Copyright (c) 2024 Holder.\n\nAll rights reserved.\n", string(data))
}

func TestAdd_AllFlags(t *testing.T) {
	color.NoColor = true
	text := "<program>\nCopyright <year> [fullname] <EMAIL>\n"
	srv := newRegistryServer(t, "Test-1.0", text)
	path := filepath.Join(t.TempDir(), "LICENSE.md")

	_, err := runRoot(t, "add", "Test-1.0",
		"--year", "1999",
		"--owner", "Ada",
		"--repo", "engine",
		"--email", "ada@example.com",
		"--path", path,
		"--registry-url", srv.URL,
		"--cache-dir", t.TempDir(),
	)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "engine\nCopyright 1999 Ada ada@example.com\n", string(data))
}

func TestAdd_UnknownLicense(t *testing.T) {
	color.NoColor = true
	srv := newRegistryServer(t, "Test-1.0", "text")

	_, err := runRoot(t, "add", "No-Such-License",
		"--path", filepath.Join(t.TempDir(), "LICENSE.md"),
		"--registry-url", srv.URL,
		"--cache-dir", t.TempDir(),
	)
	assert.ErrorIs(t, err, spdx.ErrLicenseNotFound)
}

func TestAdd_RefusesToOverwrite(t *testing.T) {
	color.NoColor = true
	srv := newRegistryServer(t, "Test-1.0", "new text")
	path := filepath.Join(t.TempDir(), "LICENSE.md")
	require.NoError(t, os.WriteFile(path, []byte("precious"), 0o600))

	_, err := runRoot(t, "add", "Test-1.0",
		"--path", path,
		"--registry-url", srv.URL,
		"--cache-dir", t.TempDir(),
	)
	assert.ErrorIs(t, err, lictool.ErrFileExists)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "precious", string(data))
}
