package gemini

import "testing"

func TestExtractJSON(t *testing.T) {
	want := `{"title": "Test"}`

	cases := []struct {
		name string
		raw  string
	}{
		{"jsonフェンス付きコードブロック", "```json\n{\"title\": \"Test\"}\n```"},
		{"言語指定なしのコードブロック", "```\n{\"title\": \"Test\"}\n```"},
		{"前置きテキスト付きの生JSON", "Here is the script you asked for:\n{\"title\": \"Test\"}\nEnjoy!"},
		{"JSONのみ", `{"title": "Test"}`},
		{"前後の空白", "  \n{\"title\": \"Test\"}\n  "},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := extractJSON(c.raw); got != want {
				t.Errorf("期待値 %q, 実際の値 %q", want, got)
			}
		})
	}

	t.Run("波括弧がなければ全体を返すこと", func(t *testing.T) {
		if got := extractJSON("plain text"); got != "plain text" {
			t.Errorf("期待値 'plain text', 実際の値 %q", got)
		}
	})
}

func TestTruncateString(t *testing.T) {
	if got := truncateString("hello", 10); got != "hello" {
		t.Errorf("短い文字列が変更されました: %q", got)
	}
	if got := truncateString("hello world", 5); got != "hello..." {
		t.Errorf("期待値 'hello...', 実際の値 %q", got)
	}
}
