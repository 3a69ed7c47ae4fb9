package command

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// recordingConsole captures everything the parser writes.
type recordingConsole struct {
	errors     []string
	errorLines []string
}

func (r *recordingConsole) WriteError(text string)     { r.errors = append(r.errors, text) }
func (r *recordingConsole) WriteErrorLine(text string) { r.errorLines = append(r.errorLines, text) }

func (r *recordingConsole) silent() bool {
	return len(r.errors) == 0 && len(r.errorLines) == 0
}

func TestParse_TooFewArguments(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "no arguments at all", args: nil},
		{name: "program path only", args: []string{"photoalbum"}},
		{name: "one user argument", args: []string{"photoalbum", "get"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			con := &recordingConsole{}

			if got := Parse(tt.args, con); got != nil {
				t.Fatalf("Parse() = %+v, want nil", got)
			}
			if len(con.errors) != 1 {
				t.Fatalf("WriteError called %d times, want 1", len(con.errors))
			}
			if !strings.Contains(con.errors[0], "Please provide one of the following commands to this program:") {
				t.Errorf("usage text missing instructions header: %q", con.errors[0])
			}
			if len(con.errorLines) != 0 {
				t.Errorf("unexpected error lines: %v", con.errorLines)
			}
		})
	}
}

func TestParse_CaseInsensitiveActionAndResource(t *testing.T) {
	tests := []struct {
		name     string
		action   string
		resource string
		want     Resource
	}{
		{name: "canonical albums", action: "get", resource: "albums", want: Albums},
		{name: "mixed case albums", action: "GeT", resource: "aLbUmS", want: Albums},
		{name: "upper case images", action: "GET", resource: "IMAGES", want: Images},
		{name: "title case images", action: "Get", resource: "Images", want: Images},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			con := &recordingConsole{}

			got := Parse([]string{"photoalbum", tt.action, tt.resource}, con)

			want := &Command{Action: Get, Resource: tt.want, Flags: map[FlagName]any{}}
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("Parse() mismatch (-want +got):\n%s", diff)
			}
			if !con.silent() {
				t.Errorf("unexpected console output: %+v", con)
			}
		})
	}
}

func TestParse_UnknownTokens(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantMsg string
	}{
		{
			name:    "unknown action",
			args:    []string{"photoalbum", "delete", "albums"},
			wantMsg: `Unknown action "delete".`,
		},
		{
			name:    "numeric action is not an enum ordinal",
			args:    []string{"photoalbum", "1", "albums"},
			wantMsg: `Unknown action "1".`,
		},
		{
			name:    "unknown resource",
			args:    []string{"photoalbum", "get", "videos"},
			wantMsg: `Unknown resource "videos".`,
		},
		{
			name:    "unknown flag",
			args:    []string{"photoalbum", "get", "images", "--colour=red"},
			wantMsg: `Unknown flag "--colour=red".`,
		},
		{
			name:    "flag without dashes",
			args:    []string{"photoalbum", "get", "images", "albumId=3"},
			wantMsg: `Unknown flag "albumId=3".`,
		},
		{
			name:    "non-numeric album id",
			args:    []string{"photoalbum", "get", "albums", "--albumId=abc"},
			wantMsg: `Flag "--albumId" must be a number.`,
		},
		{
			name:    "album id without value",
			args:    []string{"photoalbum", "get", "albums", "--albumid"},
			wantMsg: `Flag "--albumId" must be a number.`,
		},
		{
			name:    "negative album id",
			args:    []string{"photoalbum", "get", "albums", "--albumId=-4"},
			wantMsg: `Flag "--albumId" must be a number.`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			con := &recordingConsole{}

			if got := Parse(tt.args, con); got != nil {
				t.Fatalf("Parse() = %+v, want nil", got)
			}
			if diff := cmp.Diff([]string{tt.wantMsg}, con.errorLines); diff != "" {
				t.Errorf("error lines mismatch (-want +got):\n%s", diff)
			}
			if len(con.errors) != 0 {
				t.Errorf("usage should not be shown, got %q", con.errors)
			}
		})
	}
}

func TestParse_StopsAtFirstInvalidFlag(t *testing.T) {
	con := &recordingConsole{}

	got := Parse([]string{"photoalbum", "get", "images", "--bogus", "--albumId=xyz"}, con)

	if got != nil {
		t.Fatalf("Parse() = %+v, want nil", got)
	}
	if diff := cmp.Diff([]string{`Unknown flag "--bogus".`}, con.errorLines); diff != "" {
		t.Errorf("error lines mismatch (-want +got):\n%s", diff)
	}
}

func TestParse_Flags(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want map[FlagName]any
	}{
		{
			name: "album id",
			args: []string{"--albumId=42"},
			want: map[FlagName]any{AlbumID: 42},
		},
		{
			name: "search text with mixed case name",
			args: []string{"--SEARCHtext=sunt aut"},
			want: map[FlagName]any{SearchText: "sunt aut"},
		},
		{
			name: "both flags in either order",
			args: []string{"--searchText=qui", "--albumid=7"},
			want: map[FlagName]any{AlbumID: 7, SearchText: "qui"},
		},
		{
			name: "search text keeps everything after the first equals sign",
			args: []string{"--searchText=a=b"},
			want: map[FlagName]any{SearchText: "a=b"},
		},
		{
			name: "search text without value is empty",
			args: []string{"--searchText"},
			want: map[FlagName]any{SearchText: ""},
		},
		{
			name: "duplicate album id keeps the last value",
			args: []string{"--albumId=1", "--albumId=2"},
			want: map[FlagName]any{AlbumID: 2},
		},
		{
			name: "duplicate search text keeps the last value",
			args: []string{"--searchText=first", "--searchText=second"},
			want: map[FlagName]any{SearchText: "second"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			con := &recordingConsole{}
			args := append([]string{"photoalbum", "get", "images"}, tt.args...)

			got := Parse(args, con)
			if got == nil {
				t.Fatalf("Parse() = nil, console = %+v", con)
			}
			if diff := cmp.Diff(tt.want, got.Flags); diff != "" {
				t.Errorf("Flags mismatch (-want +got):\n%s", diff)
			}
			if !con.silent() {
				t.Errorf("unexpected console output: %+v", con)
			}
		})
	}
}

func TestCommand_Accessors(t *testing.T) {
	cmd := Parse([]string{"photoalbum", "get", "albums", "--albumId=3", "--searchText=qui"}, &recordingConsole{})
	if cmd == nil {
		t.Fatal("Parse() = nil")
	}

	if id, ok := cmd.AlbumID(); !ok || id != 3 {
		t.Errorf("AlbumID() = %d, %v, want 3, true", id, ok)
	}
	if text, ok := cmd.SearchText(); !ok || text != "qui" {
		t.Errorf("SearchText() = %q, %v, want %q, true", text, ok, "qui")
	}

	bare := Parse([]string{"photoalbum", "get", "albums"}, &recordingConsole{})
	if _, ok := bare.AlbumID(); ok {
		t.Error("AlbumID() ok = true for command without --albumId")
	}
	if _, ok := bare.SearchText(); ok {
		t.Error("SearchText() ok = true for command without --searchText")
	}
}

func TestEnumStrings(t *testing.T) {
	if Get.String() != "Get" {
		t.Errorf("Get.String() = %q", Get.String())
	}
	if Albums.String() != "Albums" || Images.String() != "Images" {
		t.Errorf("resource strings = %q, %q", Albums.String(), Images.String())
	}
	if AlbumID.String() != "AlbumId" || SearchText.String() != "SearchText" {
		t.Errorf("flag strings = %q, %q", AlbumID.String(), SearchText.String())
	}
}
