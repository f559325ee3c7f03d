package prompts

import (
	_ "embed"

	"github.com/shouni/go-comic-kit/pkg/domain"
)

const (
	// ModeScript は原稿テキストから台本JSONを生成するモードです。
	ModeScript = "script"
	// ModeRefine はキャプション変更に合わせて描写プロンプトを再計算するモードです。
	ModeRefine = "refine"
	// ModeSuggest は文脈から追加パネルの内容を提案するモードです。
	ModeSuggest = "suggest"
)

var (
	//go:embed script.md
	scriptPrompt string
	//go:embed refine.md
	refinePrompt string
	//go:embed suggest.md
	suggestPrompt string
)

// allTemplates はモードとテンプレート文字列を紐づけるマップなのだ。
var allTemplates = map[string]string{
	ModeScript:  scriptPrompt,
	ModeRefine:  refinePrompt,
	ModeSuggest: suggestPrompt,
}

// ScriptData は台本生成テンプレートに渡すデータ構造です。
type ScriptData struct {
	SourceText   string
	Theme        string
	ChapterCount int
	Language     string
}

// RefineData は描写再計算テンプレートに渡すデータ構造です。
type RefineData struct {
	Caption            string
	CurrentDescription string
	ArtStyle           string
}

// SuggestData はパネル提案テンプレートに渡すデータ構造です。
// Prev / Next は物語上の隣接パネルで、存在しない場合は nil です。
type SuggestData struct {
	ArtStyle       string
	ChapterContext string
	Prev           *domain.PanelSeed
	Next           *domain.PanelSeed
}
