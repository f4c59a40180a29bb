package taskgen

import (
	"strings"
	"testing"
)

// scriptedRand replays fixed draws. IntN values are reduced modulo n.
type scriptedRand struct {
	ints   []int
	floats []float64
}

func (s *scriptedRand) IntN(n int) int {
	if len(s.ints) == 0 {
		return 0
	}
	v := s.ints[0]
	s.ints = s.ints[1:]
	return v % n
}

func (s *scriptedRand) Float64() float64 {
	if len(s.floats) == 0 {
		return 0.99
	}
	v := s.floats[0]
	s.floats = s.floats[1:]
	return v
}

func TestPythonCatalogueSizes(t *testing.T) {
	tests := []struct {
		tier Tier
		want int
	}{
		{TierEasy, 20},
		{TierMedium, 25},
		{TierHard, 20},
	}
	for _, tc := range tests {
		if got := len(pythonCatalogue[tc.tier]); got != tc.want {
			t.Errorf("%s catalogue has %d templates, want %d", tc.tier, got, tc.want)
		}
	}
}

func TestPythonSnippets(t *testing.T) {
	tests := []struct {
		name     string
		fn       snippetFunc
		draws    []int
		wantCode string
		wantOut  string
		numeric  bool
	}{
		{
			name:     "replace affects every occurrence",
			fn:       easySnippets[16],
			draws:    []int{2},
			wantCode: "s = \"banana\"\nprint(s.replace('a', 'A'))",
			wantOut:  "bAnAnA",
		},
		{
			name:     "integer addition",
			fn:       easySnippets[0],
			draws:    []int{5, 10},
			wantCode: "x = 15\ny = 20\nprint(x + y)",
			wantOut:  "35",
			numeric:  true,
		},
		{
			name:     "reverse",
			fn:       easySnippets[13],
			draws:    []int{1},
			wantCode: "s = \"dog\"\nprint(s[::-1])",
			wantOut:  "god",
		},
		{
			name:    "floor division",
			fn:      easySnippets[17],
			draws:   []int{19, 0}, // x = 29, y = 2
			wantOut: "14",
			numeric: true,
		},
		{
			name:    "medium replace with missing letter leaves text unchanged",
			fn:      mediumSnippets[5],
			draws:   []int{0, 1}, // "python", 'e'
			wantOut: "python",
		},
		{
			name:    "medium slice",
			fn:      mediumSnippets[2],
			draws:   []int{0, 0, 2}, // "Hello World"[0:5]
			wantOut: "Hello",
		},
		{
			name:    "step slice",
			fn:      mediumSnippets[19],
			draws:   []int{1}, // step 3
			wantOut: "adg",
		},
		{
			name:    "parity",
			fn:      mediumSnippets[17],
			draws:   []int{1}, // x = 11
			wantOut: "odd",
		},
		{
			name:    "reversed number keeps leading zero",
			fn:      hardSnippets[5],
			draws:   []int{0}, // x = 10
			wantOut: "01",
		},
		{
			name:    "initials",
			fn:      hardSnippets[1],
			draws:   []int{1},
			wantOut: "PP",
		},
		{
			name:    "negative slice",
			fn:      hardSnippets[12],
			draws:   []int{1}, // n = 4
			wantOut: "ming",
		},
		{
			name:    "second half",
			fn:      hardSnippets[16],
			draws:   []int{0},
			wantOut: "ional",
		},
		{
			name:    "offset step slice",
			fn:      hardSnippets[19],
			draws:   []int{0, 0}, // "development", step 2
			wantOut: "eeomn",
		},
		{
			name:    "digit sum",
			fn:      hardSnippets[14],
			draws:   []int{73}, // x = 123
			wantOut: "6",
			numeric: true,
		},
	}

	for _, tc := range tests {
		got := tc.fn(&scriptedRand{ints: tc.draws})
		if tc.wantCode != "" && got.code != tc.wantCode {
			t.Errorf("%s: code = %q, want %q", tc.name, got.code, tc.wantCode)
		}
		if got.output != tc.wantOut {
			t.Errorf("%s: output = %q, want %q", tc.name, got.output, tc.wantOut)
		}
		if got.numeric != tc.numeric {
			t.Errorf("%s: numeric = %v, want %v", tc.name, got.numeric, tc.numeric)
		}
	}
}

func TestGeneratePython_QuestionAndAnswerType(t *testing.T) {
	r := seeded(21)
	for _, tier := range Tiers {
		for i := 0; i < 500; i++ {
			task := generatePython(r, tier)
			if !strings.HasPrefix(task.Text, pythonPrompt) {
				t.Fatalf("question %q lacks prompt", task.Text)
			}
			if !strings.Contains(task.Text, "print(") {
				t.Fatalf("question %q has no print call", task.Text)
			}
			if task.AnswerType != AnswerTypeInteger && task.AnswerType != AnswerTypeText {
				t.Fatalf("unexpected answer type %q", task.AnswerType)
			}
			if !CheckAnswer(task.Answer, task) {
				t.Fatalf("canonical answer %q rejected", task.Answer)
			}
		}
	}
}
