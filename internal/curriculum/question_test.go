package curriculum

import (
	"strings"
	"testing"
)

func TestQuestionIDStable(t *testing.T) {
	q := Question{Text: "What is 7 x 8?", Answer: "56"}

	a := QuestionID(q)
	b := QuestionID(q)
	if a != b {
		t.Errorf("QuestionID not stable: %q vs %q", a, b)
	}

	if !strings.HasPrefix(a, "q-") || len(a) != 10 {
		t.Errorf("QuestionID = %q, want q- prefix and 8 hex digits", a)
	}
}

func TestQuestionIDIgnoresAnswerAndExplanation(t *testing.T) {
	a := QuestionID(Question{Text: "What is 7 x 8?", Answer: "56"})
	b := QuestionID(Question{Text: "What is 7 x 8?", Answer: "54", Explanation: "different"})
	if a != b {
		t.Errorf("identity should depend only on text: %q vs %q", a, b)
	}
}

func TestQuestionIDDiffersByText(t *testing.T) {
	a := QuestionID(Question{Text: "What is 7 x 8?"})
	b := QuestionID(Question{Text: "What is 7 x 9?"})
	if a == b {
		t.Errorf("distinct questions collided: %q", a)
	}
}

func TestQuestionIDUsesLeadingBytesOnly(t *testing.T) {
	prefix := strings.Repeat("x", questionIDPrefixLen)

	a := QuestionID(Question{Text: prefix + " tail one"})
	b := QuestionID(Question{Text: prefix + " tail two"})
	if a != b {
		t.Errorf("texts sharing the leading %d bytes got different IDs: %q vs %q", questionIDPrefixLen, a, b)
	}

	c := QuestionID(Question{Text: "y" + prefix[1:]})
	if a == c {
		t.Error("texts differing inside the prefix got the same ID")
	}
}
