package taskgen

import (
	"fmt"
	"strconv"
	"strings"
)

// pythonPrompt prefixes every code-output question.
const pythonPrompt = "What will this program print?\n\n"

// snippet is a generated program and the exact line it prints.
type snippet struct {
	code    string
	output  string
	numeric bool
}

type snippetFunc func(r Rand) snippet

func intOut(code string, n int) snippet {
	return snippet{code: code, output: strconv.Itoa(n), numeric: true}
}

func textOut(code, s string) snippet {
	return snippet{code: code, output: s}
}

// pythonCatalogue holds the snippet templates per tier.
var pythonCatalogue = map[Tier][]snippetFunc{
	TierEasy:   easySnippets,
	TierMedium: mediumSnippets,
	TierHard:   hardSnippets,
}

func generatePython(r Rand, tier Tier) *Task {
	s := pick(r, pythonCatalogue[tier])(r)
	t := &Task{
		Text:       pythonPrompt + s.code,
		Answer:     s.output,
		AnswerType: AnswerTypeText,
		Kind:       KindPython,
		Tier:       tier,
	}
	if s.numeric {
		t.AnswerType = AnswerTypeInteger
	}
	return t
}

var easySnippets = []snippetFunc{
	func(r Rand) snippet {
		a, b := intIn(r, 10, 59), intIn(r, 10, 59)
		return intOut(fmt.Sprintf("x = %d\ny = %d\nprint(x + y)", a, b), a+b)
	},
	func(r Rand) snippet {
		a, b := intIn(r, 2, 16), intIn(r, 2, 9)
		return intOut(fmt.Sprintf("x = %d\ny = %d\nprint(x * y)", a, b), a*b)
	},
	func(r Rand) snippet {
		s := pick(r, []string{"Welcome", "JavaScript", "Programming", "Algorithm", "Database", "Network", "Computer", "Software"})
		return intOut(fmt.Sprintf("text = %q\nprint(len(text))", s), len(s))
	},
	func(r Rand) snippet {
		n := intIn(r, 5, 24)
		return intOut(fmt.Sprintf("x = %d\nx = x * 2\nprint(x)", n), n*2)
	},
	func(r Rand) snippet {
		s := pick(r, []string{"hello", "world", "code", "data", "info", "tech"})
		return textOut(fmt.Sprintf("s = %q\nprint(s.upper())", s), strings.ToUpper(s))
	},
	func(r Rand) snippet {
		s := pick(r, []string{"PYTHON", "JAVA", "SWIFT", "RUST", "GOLANG"})
		return textOut(fmt.Sprintf("s = %q\nprint(s.lower())", s), strings.ToLower(s))
	},
	func(r Rand) snippet {
		a, b := intIn(r, 20, 49), intIn(r, 5, 19)
		return intOut(fmt.Sprintf("x = %d\ny = %d\nprint(x - y)", a, b), a-b)
	},
	func(r Rand) snippet {
		n := intIn(r, 10, 59)
		return intOut(fmt.Sprintf("x = %d\nprint(x + 10)", n), n+10)
	},
	func(r Rand) snippet {
		s := pick(r, []string{"apple", "banana", "cherry", "orange", "grape", "melon"})
		return textOut(fmt.Sprintf("s = %q\nprint(s.capitalize())", s), capitalize(s))
	},
	func(r Rand) snippet {
		n, m := intIn(r, 10, 49), intIn(r, 3, 5)
		return intOut(fmt.Sprintf("x = %d\nprint(x * %d)", n, m), n*m)
	},
	func(r Rand) snippet {
		a, b, c := intIn(r, 1, 10), intIn(r, 1, 10), intIn(r, 1, 10)
		return intOut(fmt.Sprintf("a = %d\nb = %d\nc = %d\nprint(a + b + c)", a, b, c), a+b+c)
	},
	func(r Rand) snippet {
		s := pick(r, []string{"test", "code", "loop", "data", "file"})
		return textOut(fmt.Sprintf("s = %q\nprint(s * 2)", s), strings.Repeat(s, 2))
	},
	func(r Rand) snippet {
		n := intIn(r, 5, 19)
		return intOut(fmt.Sprintf("x = %d\nprint(x %% 3)", n), n%3)
	},
	func(r Rand) snippet {
		s := pick(r, []string{"cat", "dog", "car", "bus", "box", "key"})
		return textOut(fmt.Sprintf("s = %q\nprint(s[::-1])", s), reverse(s))
	},
	func(r Rand) snippet {
		a, b := intIn(r, 2, 11), intIn(r, 2, 6)
		return intOut(fmt.Sprintf("x = %d\ny = %d\nprint(x ** y)", a, b), ipow(a, b))
	},
	func(r Rand) snippet {
		n := intIn(r, 20, 119)
		return textOut(fmt.Sprintf("x = %d\nprint(str(x)[0])", n), strconv.Itoa(n)[:1])
	},
	func(r Rand) snippet {
		s := pick(r, []string{"apple", "orange", "banana", "cherry"})
		return textOut(fmt.Sprintf("s = %q\nprint(s.replace('a', 'A'))", s), strings.ReplaceAll(s, "a", "A"))
	},
	func(r Rand) snippet {
		a, b := intIn(r, 10, 29), intIn(r, 2, 4)
		return intOut(fmt.Sprintf("x = %d\ny = %d\nprint(x // y)", a, b), a/b)
	},
	func(r Rand) snippet {
		a, b := intIn(r, 1, 20), intIn(r, 1, 20)
		return intOut(fmt.Sprintf("a = %d\nb = %d\nprint(max(a, b))", a, b), max(a, b))
	},
	func(r Rand) snippet {
		s := pick(r, []string{"Hello", "World", "Python", "Code"})
		i := r.IntN(len(s))
		return textOut(fmt.Sprintf("s = %q\nprint(s[%d])", s, i), s[i:i+1])
	},
}

var mediumSnippets = []snippetFunc{
	func(r Rand) snippet {
		a, b, c := intIn(r, 5, 19), intIn(r, 2, 9), intIn(r, 2, 9)
		return intOut(fmt.Sprintf("x = %d\ny = %d\nz = %d\nprint(x + y * z)", a, b, c), a+b*c)
	},
	func(r Rand) snippet {
		n := intIn(r, 20, 99)
		return intOut(fmt.Sprintf("x = %d\nprint(x %% 10)", n), n%10)
	},
	func(r Rand) snippet {
		s := pick(r, []string{"Hello World", "Python Code", "Data Science", "Machine Learning", "Web Development"})
		start := intIn(r, 0, 2)
		end := start + intIn(r, 3, 6)
		return textOut(fmt.Sprintf("text = %q\nprint(text[%d:%d])", s, start, end), slice(s, start, end))
	},
	func(r Rand) snippet {
		nums := randInts(r, 4, 1, 20)
		return intOut(fmt.Sprintf("nums = %s\nprint(max(nums))", listLiteral(nums)), maxOf(nums))
	},
	func(r Rand) snippet {
		b, e := intIn(r, 2, 7), intIn(r, 2, 4)
		return intOut(fmt.Sprintf("x = %d\ny = %d\nprint(x ** y)", b, e), ipow(b, e))
	},
	func(r Rand) snippet {
		s := pick(r, []string{"python", "javascript", "golang", "kotlin"})
		c := pick(r, []string{"a", "e", "o", "i"})
		up := strings.ToUpper(c)
		return textOut(fmt.Sprintf("s = %q\nprint(s.replace('%s', '%s'))", s, c, up), strings.ReplaceAll(s, c, up))
	},
	func(r Rand) snippet {
		n := intIn(r, 30, 79)
		return intOut(fmt.Sprintf("x = %d\nprint(x %% 7)", n), n%7)
	},
	func(r Rand) snippet {
		nums := randInts(r, 4, 1, 15)
		return intOut(fmt.Sprintf("nums = %s\nprint(min(nums))", listLiteral(nums)), minOf(nums))
	},
	func(r Rand) snippet {
		s := pick(r, []string{"programming", "algorithm", "database", "network"})
		i := intIn(r, 1, len(s)-3)
		return textOut(fmt.Sprintf("s = %q\nprint(s[%d])", s, i), s[i:i+1])
	},
	func(r Rand) snippet {
		a, b := intIn(r, 10, 29), intIn(r, 2, 6)
		return intOut(fmt.Sprintf("x = %d\ny = %d\nprint(x // y)", a, b), a/b)
	},
	func(r Rand) snippet {
		nums := randInts(r, 5, 1, 10)
		return intOut(fmt.Sprintf("nums = %s\nprint(sum(nums))", listLiteral(nums)), sumOf(nums, func(x int) int { return x }))
	},
	func(r Rand) snippet {
		s := pick(r, []string{"developer", "engineer", "architect", "analyst"})
		return intOut(fmt.Sprintf("s = %q\nresult = len(s)\nprint(result)", s), len(s))
	},
	func(r Rand) snippet {
		a, b := intIn(r, 3, 14), intIn(r, 2, 6)
		return intOut(fmt.Sprintf("x = %d\ny = %d\nresult = x %% y\nprint(result)", a, b), a%b)
	},
	func(r Rand) snippet {
		s := pick(r, []string{"Hello World", "Python Code", "Quick Sort", "Deep Learning"})
		return intOut(fmt.Sprintf("text = %q\nwords = text.split()\nprint(len(words))", s), len(strings.Fields(s)))
	},
	func(r Rand) snippet {
		s := pick(r, []string{"testing", "coding", "learning", "teaching"})
		return textOut(fmt.Sprintf("s = %q\nprint(s.replace('ing', 'ed'))", s), strings.ReplaceAll(s, "ing", "ed"))
	},
	func(r Rand) snippet {
		a, b, c := intIn(r, 1, 20), intIn(r, 1, 20), intIn(r, 1, 20)
		return intOut(fmt.Sprintf("a, b, c = %d, %d, %d\nprint(a * b + c)", a, b, c), a*b+c)
	},
	func(r Rand) snippet {
		s := pick(r, []string{"algorithm", "function", "variable", "constant"})
		n := intIn(r, 1, len(s)-2)
		return textOut(fmt.Sprintf("s = %q\nprint(s[:%d])", s, n), s[:n])
	},
	func(r Rand) snippet {
		n := intIn(r, 10, 34)
		out := "odd"
		if n%2 == 0 {
			out = "even"
		}
		return textOut(fmt.Sprintf("x = %d\nprint('even' if x %% 2 == 0 else 'odd')", n), out)
	},
	func(r Rand) snippet {
		nums := randInts(r, 4, 1, 10)
		return intOut(fmt.Sprintf("nums = %s\nprint(len([x for x in nums if x > 5]))", listLiteral(nums)),
			countOf(nums, func(x int) bool { return x > 5 }))
	},
	func(r Rand) snippet {
		s := "abcdefgh"
		step := intIn(r, 2, 3)
		return textOut(fmt.Sprintf("s = %q\nprint(s[::%d])", s, step), stride(s, 0, step))
	},
	func(r Rand) snippet {
		a, b := intIn(r, 10, 24), intIn(r, 2, 6)
		return intOut(fmt.Sprintf("x = %d\ny = %d\nprint(x * y + x)", a, b), a*b+a)
	},
	func(r Rand) snippet {
		s := pick(r, []string{"python", "golang", "kotlin", "elixir"})
		return textOut(fmt.Sprintf("s = %q\nprint(s[::2])", s), stride(s, 0, 2))
	},
	func(r Rand) snippet {
		nums := randInts(r, 5, 1, 10)
		return intOut(fmt.Sprintf("nums = %s\nprint(sum([x * 2 for x in nums]))", listLiteral(nums)),
			sumOf(nums, func(x int) int { return x * 2 }))
	},
	func(r Rand) snippet {
		n := intIn(r, 20, 59)
		return intOut(fmt.Sprintf("x = %d\nprint(len(str(x)))", n), len(strconv.Itoa(n)))
	},
	func(r Rand) snippet {
		s := pick(r, []string{"function", "variable", "constant", "operator"})
		c := s[r.IntN(len(s))]
		return intOut(fmt.Sprintf("s = %q\nprint(s.count('%c'))", s, c), strings.Count(s, string(c)))
	},
}

var hardSnippets = []snippetFunc{
	func(r Rand) snippet {
		nums := randInts(r, 6, 1, 15)
		return intOut(fmt.Sprintf("nums = %s\nresult = sum([x for x in nums if x %% 2 == 0])\nprint(result)", listLiteral(nums)),
			sumOf(nums, func(x int) int { return keepIf(x, x%2 == 0) }))
	},
	func(r Rand) snippet {
		s := pick(r, []string{"Hello World", "Python Programming", "Data Analysis", "Web Design"})
		var initials strings.Builder
		for _, w := range strings.Fields(s) {
			initials.WriteString(w[:1])
		}
		return textOut(fmt.Sprintf("text = %q\nwords = text.split()\nprint(''.join([w[0] for w in words]))", s), initials.String())
	},
	func(r Rand) snippet {
		a, b := intIn(r, 20, 59), intIn(r, 3, 7)
		return intOut(fmt.Sprintf("x = %d\ny = %d\nprint(x // y)", a, b), a/b)
	},
	func(r Rand) snippet {
		nums := randInts(r, 5, 1, 8)
		return intOut(fmt.Sprintf("nums = %s\nresult = sum([x * 3 for x in nums])\nprint(result)", listLiteral(nums)),
			sumOf(nums, func(x int) int { return x * 3 }))
	},
	func(r Rand) snippet {
		s := pick(r, []string{"abcdefgh", "programming", "developer", "technology"})
		return intOut(fmt.Sprintf("s = %q\nprint(len(s) // 2)", s), len(s)/2)
	},
	func(r Rand) snippet {
		n := intIn(r, 10, 99)
		return textOut(fmt.Sprintf("x = %d\nprint(str(x)[::-1])", n), reverse(strconv.Itoa(n)))
	},
	func(r Rand) snippet {
		nums := randInts(r, 6, 1, 10)
		return intOut(fmt.Sprintf("nums = %s\nresult = len([x for x in nums if x > 5])\nprint(result)", listLiteral(nums)),
			countOf(nums, func(x int) bool { return x > 5 }))
	},
	func(r Rand) snippet {
		nums := randInts(r, 5, 1, 12)
		return intOut(fmt.Sprintf("nums = %s\nresult = sum([x for x in nums if x %% 3 == 0])\nprint(result)", listLiteral(nums)),
			sumOf(nums, func(x int) int { return keepIf(x, x%3 == 0) }))
	},
	func(r Rand) snippet {
		s := pick(r, []string{"algorithm", "framework", "database", "interface"})
		return intOut(fmt.Sprintf("s = %q\nvowels = len([c for c in s if c in 'aeiou'])\nprint(vowels)", s), countVowels(s))
	},
	func(r Rand) snippet {
		nums := randInts(r, 4, 5, 14)
		return intOut(fmt.Sprintf("nums = %s\nresult = sum([x ** 2 for x in nums])\nprint(result)", listLiteral(nums)),
			sumOf(nums, func(x int) int { return x * x }))
	},
	func(r Rand) snippet {
		s := pick(r, []string{"developer", "architect", "manager", "designer"})
		return intOut(fmt.Sprintf("s = %q\nconsonants = len([c for c in s if c not in 'aeiou'])\nprint(consonants)", s), len(s)-countVowels(s))
	},
	func(r Rand) snippet {
		nums := randInts(r, 5, 1, 15)
		return intOut(fmt.Sprintf("nums = %s\nresult = sum([x for x in nums if x %% 2 != 0])\nprint(result)", listLiteral(nums)),
			sumOf(nums, func(x int) int { return keepIf(x, x%2 != 0) }))
	},
	func(r Rand) snippet {
		s := "programming"
		n := intIn(r, 3, 6)
		return textOut(fmt.Sprintf("s = %q\nprint(s[-%d:])", s, n), s[len(s)-n:])
	},
	func(r Rand) snippet {
		nums := randInts(r, 6, 1, 20)
		limit := intIn(r, 8, 12)
		return intOut(fmt.Sprintf("nums = %s\nresult = len([x for x in nums if x < %d])\nprint(result)", listLiteral(nums), limit),
			countOf(nums, func(x int) bool { return x < limit }))
	},
	func(r Rand) snippet {
		n := intIn(r, 50, 149)
		digits := 0
		for _, d := range strconv.Itoa(n) {
			digits += int(d - '0')
		}
		return intOut(fmt.Sprintf("x = %d\nprint(sum([int(d) for d in str(x)]))", n), digits)
	},
	func(r Rand) snippet {
		nums := randInts(r, 4, 2, 9)
		product := 1
		for _, x := range nums {
			product *= x
		}
		return intOut(fmt.Sprintf("nums = %s\nresult = 1\nfor x in nums:\n    result *= x\nprint(result)", listLiteral(nums)), product)
	},
	func(r Rand) snippet {
		s := pick(r, []string{"functional", "procedural", "objective", "declarative"})
		return textOut(fmt.Sprintf("s = %q\nprint(s[len(s)//2:])", s), s[len(s)/2:])
	},
	func(r Rand) snippet {
		nums := randInts(r, 5, 1, 12)
		return intOut(fmt.Sprintf("nums = %s\nprint(sum([x %% 4 for x in nums]))", listLiteral(nums)),
			sumOf(nums, func(x int) int { return x % 4 }))
	},
	func(r Rand) snippet {
		a, b := intIn(r, 20, 69), intIn(r, 3, 10)
		return intOut(fmt.Sprintf("x = %d\ny = %d\nprint(x %% y + y)", a, b), a%b+b)
	},
	func(r Rand) snippet {
		s := pick(r, []string{"development", "application", "integration", "optimization"})
		step := intIn(r, 2, 3)
		return textOut(fmt.Sprintf("s = %q\nprint(s[1::%d])", s, step), stride(s, 1, step))
	},
}

// The helpers below reproduce Python semantics for the ASCII literals
// used in the catalogue.

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}

func reverse(s string) string {
	b := []byte(s)
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
	return string(b)
}

// slice mirrors s[start:end], clamping end to the string length.
func slice(s string, start, end int) string {
	end = min(end, len(s))
	if start >= end {
		return ""
	}
	return s[start:end]
}

// stride mirrors s[start::step].
func stride(s string, start, step int) string {
	var b strings.Builder
	for i := start; i < len(s); i += step {
		b.WriteByte(s[i])
	}
	return b.String()
}

func countVowels(s string) int {
	n := 0
	for _, c := range s {
		if strings.ContainsRune("aeiou", c) {
			n++
		}
	}
	return n
}

func ipow(base, exp int) int {
	result := 1
	for range exp {
		result *= base
	}
	return result
}

func randInts(r Rand, n, lo, hi int) []int {
	nums := make([]int, n)
	for i := range nums {
		nums[i] = intIn(r, lo, hi)
	}
	return nums
}

func listLiteral(nums []int) string {
	parts := make([]string, len(nums))
	for i, n := range nums {
		parts[i] = strconv.Itoa(n)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func sumOf(nums []int, f func(int) int) int {
	total := 0
	for _, x := range nums {
		total += f(x)
	}
	return total
}

func countOf(nums []int, keep func(int) bool) int {
	n := 0
	for _, x := range nums {
		if keep(x) {
			n++
		}
	}
	return n
}

func keepIf(x int, ok bool) int {
	if ok {
		return x
	}
	return 0
}

func maxOf(nums []int) int {
	m := nums[0]
	for _, x := range nums[1:] {
		m = max(m, x)
	}
	return m
}

func minOf(nums []int) int {
	m := nums[0]
	for _, x := range nums[1:] {
		m = min(m, x)
	}
	return m
}
