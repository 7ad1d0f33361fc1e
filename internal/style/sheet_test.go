package style

import (
	"math"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/grindlemire/go-gui/internal/layout"
)

func TestParseSelector(t *testing.T) {
	type tc struct {
		in          string
		want        Selector
		specificity int
		wantErr     bool
	}

	tests := map[string]tc{
		"universal":    {in: "*", want: Selector{}, specificity: 0},
		"kind":         {in: "text", want: Selector{Kind: "text"}, specificity: 1},
		"class":        {in: ".btn", want: Selector{Classes: []string{"btn"}}, specificity: 10},
		"id":           {in: "#main", want: Selector{ID: "main"}, specificity: 100},
		"compound":     {in: "text.title.big#hdr", want: Selector{Kind: "text", ID: "hdr", Classes: []string{"title", "big"}}, specificity: 121},
		"empty":        {in: "  ", wantErr: true},
		"dangling dot": {in: "text.", wantErr: true},
		"two ids":      {in: "#a#b", wantErr: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := ParseSelector(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseSelector(%q) = %+v, want error", tt.in, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseSelector(%q) error = %v", tt.in, err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("selector mismatch (-want +got):\n%s", diff)
			}
			if s := got.Specificity(); s != tt.specificity {
				t.Errorf("Specificity() = %d, want %d", s, tt.specificity)
			}
		})
	}
}

func TestSelector_Matches(t *testing.T) {
	sub := Subject{Kind: "text", ID: "title", Classes: []string{"big", "bold"}}

	type tc struct {
		selector string
		want     bool
	}

	tests := map[string]tc{
		"universal":     {selector: "*", want: true},
		"kind":          {selector: "text", want: true},
		"other kind":    {selector: "image", want: false},
		"all classes":   {selector: ".bold.big", want: true},
		"missing class": {selector: ".big.small", want: false},
		"kind and id":   {selector: "text#title", want: true},
		"wrong id":      {selector: "#subtitle", want: false},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			sel, err := ParseSelector(tt.selector)
			if err != nil {
				t.Fatalf("ParseSelector() error = %v", err)
			}
			if got := sel.Matches(sub); got != tt.want {
				t.Errorf("Matches() = %v, want %v", got, tt.want)
			}
		})
	}
}

const sampleSheet = `
rules:
  - selector: "*"
    style:
      font-size: 13
  - selector: ".btn"
    style:
      padding: [4, 8]
      background: "#336699"
      width: 50%
      border-width: 1px
      flex-direction: column
  - selector: "text#title"
    style:
      color: white
      text-align: center
      margin: 1 2 3 4
      max-width: auto
      opacity: .nan
`

func TestParseSheet(t *testing.T) {
	sheet, err := ParseSheet([]byte(sampleSheet))
	if err != nil {
		t.Fatalf("ParseSheet() error = %v", err)
	}
	if len(sheet.Rules) != 3 {
		t.Fatalf("len(Rules) = %d, want 3", len(sheet.Rules))
	}

	btn := sheet.Rules[1]
	want := []Declaration{
		Decl(PropPadding, EdgeValues(4, 8, 4, 8)),
		Decl(PropBackground, ColorValue(RGB(0x33, 0x66, 0x99))),
		Decl(PropWidth, Len(layout.Percent(50))),
		Decl(PropBorder, Len(layout.Px(1))),
		Decl(PropDirection, Keyword("column")),
	}
	if diff := cmp.Diff(want, btn.Declarations); diff != "" {
		t.Errorf("btn declarations mismatch (-want +got):\n%s", diff)
	}

	title := sheet.Rules[2].Declarations
	if got := title[2].Value; got != EdgeValues(1, 2, 3, 4) {
		t.Errorf("margin = %v, want 1 2 3 4", got)
	}
	if got := title[3].Value; got != Len(layout.Auto()) {
		t.Errorf("max-width = %v, want auto", got)
	}
	if got := title[4].Value; got.Kind != KindNumber || !math.IsNaN(got.Number) {
		t.Errorf("opacity = %v, want NaN number", got)
	}
}

func TestParseSheet_ResolvesThroughCascade(t *testing.T) {
	sheet, err := ParseSheet([]byte(sampleSheet))
	if err != nil {
		t.Fatalf("ParseSheet() error = %v", err)
	}

	tree := &testTree{}
	root := tree.add(-1, Subject{Kind: "container", Classes: []string{"btn"}})
	title := tree.add(root, Subject{Kind: "text", ID: "title"})

	out, errs := Resolve(tree, sheet, Options{})

	if len(errs) != 1 || errs[0].Property != PropOpacity || errs[0].Node != title {
		t.Fatalf("errors = %v, want one opacity error on the title", errs)
	}
	if got := out[root].Layout.Border; got != layout.EdgeAll(1) {
		t.Errorf("Border = %+v, want 1px on every side", got)
	}
	if got := out[root].Layout.Direction; got != layout.Column {
		t.Errorf("Direction = %v, want Column", got)
	}
	if got := out[root].FontSize; got != 13 {
		t.Errorf("FontSize = %v, want 13", got)
	}
	if got := out[title].Color; got != White {
		t.Errorf("title Color = %v, want white", got)
	}
	if got := out[title].TextAlign; got != TextAlignCenter {
		t.Errorf("title TextAlign = %v, want center", got)
	}
	if got := out[title].Opacity; got != 1 {
		t.Errorf("title Opacity = %v, want default 1", got)
	}
}

func TestParseSheet_Errors(t *testing.T) {
	type tc struct {
		src  string
		want string
	}

	tests := map[string]tc{
		"unknown property": {
			src:  "rules:\n  - selector: x\n    style:\n      colour: red\n",
			want: `unknown property "colour"`,
		},
		"bad selector": {
			src:  "rules:\n  - selector: \"#a#b\"\n    style:\n      color: red\n",
			want: "two ids",
		},
		"bad color": {
			src:  "rules:\n  - selector: x\n    style:\n      color: \"#12\"\n",
			want: "bad color length",
		},
		"unknown field": {
			src:  "rulez: []\n",
			want: "field rulez not found",
		},
		"style not mapping": {
			src:  "rules:\n  - selector: x\n    style: [1, 2]\n",
			want: "must be a mapping",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := ParseSheet([]byte(tt.src))
			if err == nil {
				t.Fatal("ParseSheet() error = nil, want error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error = %q, want it to contain %q", err, tt.want)
			}
		})
	}
}

func TestLoadSheet_Empty(t *testing.T) {
	sheet, err := LoadSheet(strings.NewReader(""))
	if err != nil {
		t.Fatalf("LoadSheet() error = %v", err)
	}
	if len(sheet.Rules) != 0 {
		t.Errorf("len(Rules) = %d, want 0", len(sheet.Rules))
	}
}

func TestParseColor(t *testing.T) {
	type tc struct {
		in      string
		want    Color
		wantErr bool
	}

	tests := map[string]tc{
		"short hex":  {in: "#fa0", want: RGB(0xff, 0xaa, 0x00)},
		"long hex":   {in: "#336699", want: RGB(0x33, 0x66, 0x99)},
		"with alpha": {in: "#33669980", want: Color{R: 0x33, G: 0x66, B: 0x99, A: 0x80}},
		"named":      {in: "White", want: White},
		"bad digits": {in: "#zzzzzz", wantErr: true},
		"no hash":    {in: "336699", wantErr: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := ParseColor(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseColor(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseColor(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
