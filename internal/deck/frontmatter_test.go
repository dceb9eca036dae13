package deck

import (
	"reflect"
	"testing"
)

func TestParseHeaders(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    map[string]string
	}{
		{
			name:    "well-formed block",
			content: "---\nTitle: Fix bug\nOwner: dana\n---\nBody here.\n",
			want:    map[string]string{"Title": "Fix bug", "Owner": "dana"},
		},
		{
			name:    "values and keys are trimmed",
			content: "---\n  Title  :   spaced out   \n---\n",
			want:    map[string]string{"Title": "spaced out"},
		},
		{
			name:    "repeated key keeps last occurrence",
			content: "---\nTitle: first\nTitle: second\n---\n",
			want:    map[string]string{"Title": "second"},
		},
		{
			name:    "no delimiters yields nothing",
			content: "Title: not a header\njust text\n",
			want:    map[string]string{},
		},
		{
			name:    "single delimiter parses header lines to EOF",
			content: "---\nstatustext: In Review\nstatusdetails: open\n",
			want:    map[string]string{"statustext": "In Review", "statusdetails": "open"},
		},
		{
			name:    "line without colon has empty value",
			content: "---\nUrgent\n---\n",
			want:    map[string]string{"Urgent": ""},
		},
		{
			name:    "empty key is discarded",
			content: "---\n: orphan value\nTitle: kept\n---\n",
			want:    map[string]string{"Title": "kept"},
		},
		{
			name:    "value may contain colons",
			content: "---\nLink: https://example.com/x\n---\n",
			want:    map[string]string{"Link": "https://example.com/x"},
		},
		{
			name:    "only the first block is consumed",
			content: "---\na: 1\n---\n---\nb: 2\n---\n",
			want:    map[string]string{"a": "1"},
		},
		{
			name:    "blank lines inside block are skipped",
			content: "---\na: 1\n\nb: 2\n---\n",
			want:    map[string]string{"a": "1", "b": "2"},
		},
		{
			name:    "empty content",
			content: "",
			want:    map[string]string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseHeaders(tt.content)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseHeaders() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestExtractBody(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []string
	}{
		{
			name:    "lines after second delimiter",
			content: "---\nTitle: Fix bug\n---\nLine one.\nLine two.\n",
			want:    []string{"Line one.", "Line two."},
		},
		{
			name:    "blank lines are preserved",
			content: "---\nTitle: x\n---\nfirst\n\nthird\n",
			want:    []string{"first", "", "third"},
		},
		{
			name:    "delimiter lines in the body are verbatim",
			content: "---\nTitle: x\n---\nabove\n---\nbelow\n",
			want:    []string{"above", "---", "below"},
		},
		{
			name:    "no delimiters yields empty body",
			content: "just text\nmore text\n",
			want:    nil,
		},
		{
			name:    "single delimiter yields empty body",
			content: "---\nTitle: x\nno closing marker\n",
			want:    nil,
		},
		{
			name:    "empty body after closed block",
			content: "---\nTitle: x\n---\n",
			want:    nil,
		},
		{
			name:    "trailing blank line is kept",
			content: "---\nTitle: x\n---\nlast\n\n",
			want:    []string{"last", ""},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractBody(tt.content)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ExtractBody() = %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestIsCardName(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"1", true},
		{"12", true},
		{"123", true},
		{"1234", true},
		{"0042", true},
		{"12345", false},
		{"", false},
		{"12a", false},
		{"a12", false},
		{".status", false},
		{".id", false},
		{"12.txt", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsCardName(tt.name); got != tt.want {
				t.Errorf("IsCardName(%q) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}
