package domain

// Layout は1ページのコマ割りモードです。
// GRID/DYNAMIC は2カラム構成でパネルの Span 指定を尊重し、
// VERTICAL/SPLASH は常に1カラムで表示されます。
type Layout string

const (
	LayoutGrid     Layout = "GRID"
	LayoutVertical Layout = "VERTICAL"
	LayoutDynamic  Layout = "DYNAMIC"
	LayoutSplash   Layout = "SPLASH"
)

// PanelStatus はパネルの生成ライフサイクル上の状態を表す閉じた集合です。
type PanelStatus string

const (
	// StatusPending は画像が未生成の初期状態です。
	StatusPending PanelStatus = "pending"
	// StatusGenerating は画像生成リクエストが実行中の状態です。
	StatusGenerating PanelStatus = "generating"
	// StatusUpdatingPrompt はキャプション編集に伴う描写プロンプトの再計算中です。
	// 画像生成では遷移しません。
	StatusUpdatingPrompt PanelStatus = "updating_prompt"
	// StatusComplete は画像生成が成功し ImageRef が設定された状態です。
	StatusComplete PanelStatus = "complete"
	// StatusError は直近の画像生成が失敗した状態です。ユーザーの再生成で復帰できます。
	StatusError PanelStatus = "error"
)

// BubbleStyle は吹き出しの種類です。
type BubbleStyle string

const (
	BubbleStandard BubbleStyle = "STANDARD"
	BubbleThought  BubbleStyle = "THOUGHT"
	BubbleShout    BubbleStyle = "SHOUT"
)

// Span はパネルの横幅（カラム占有数）です。1 = 半幅、2 = 全幅。
type Span int

const (
	SpanHalf Span = 1
	SpanFull Span = 2
)

// Panel は漫画の最小構成単位です。描写プロンプト、キャプション、
// 生成状態、および任意のスタイル上書きを保持します。
type Panel struct {
	// ID はスクリプト内で一意な安定識別子です（ページ番号 + 序数 + 一意トークン）。
	// 生成時に割り当てられ、再利用されません。
	ID          string      `json:"id"`
	Description string      `json:"description"`
	Caption     string      `json:"caption"`
	// ImageRef は生成済み画像への参照（data URI）です。
	// 一度でも生成が成功した場合にのみ設定されます。
	ImageRef string       `json:"image_ref,omitempty"`
	Status   PanelStatus  `json:"status"`
	// Style はグローバル TextConfig に対する部分的な上書きです。
	// nil はグローバル設定を100%継承することを意味します。
	Style *TextOverride `json:"style,omitempty"`
	Span  Span          `json:"span,omitempty"`
}

// Page は読み順に並んだパネルの集合と、レイアウトモードを保持します。
type Page struct {
	// PageNumber は1始まりで、ページの生存期間を通じて不変です。
	// エクスポート時のファイル名や表示に使用されます。
	PageNumber   int     `json:"page_number"`
	ChapterTitle string  `json:"chapter_title,omitempty"`
	Layout       Layout  `json:"layout"`
	Panels       []Panel `json:"panels"`
}

// Script は単一の信頼できる情報源（root of truth）です。
// ページ順は読み順であり、生成後の並び替えはサポートしません。
type Script struct {
	Title string `json:"title"`
	Theme string `json:"theme,omitempty"`
	Pages []Page `json:"pages"`
}

// TextConfig はキャプション描画のグローバル設定です。
type TextConfig struct {
	FontFamily      string      `json:"font_family"`
	TitleFontFamily string      `json:"title_font_family"`
	// FontSize は倍率で、[0.8, 2.0] にクランプされます。
	FontSize    float64     `json:"font_size"`
	Color       string      `json:"color"`
	BubbleStyle BubbleStyle `json:"bubble_style"`
}

// TextOverride は TextConfig に対するスパースなパッチです。
// nil のフィールドは「グローバルを継承」、非 nil は「明示的な上書き」を表します。
// グローバルと同値を明示設定した場合も上書きとして扱われます。
type TextOverride struct {
	FontFamily      *string      `json:"font_family,omitempty"`
	TitleFontFamily *string      `json:"title_font_family,omitempty"`
	FontSize        *float64     `json:"font_size,omitempty"`
	Color           *string      `json:"color,omitempty"`
	BubbleStyle     *BubbleStyle `json:"bubble_style,omitempty"`
}

// PanelSeed は外部コラボレーター（台本生成・パネル提案）とやり取りする
// 最小限のパネル内容（描写 + キャプション）です。
type PanelSeed struct {
	Description string `json:"description"`
	Caption     string `json:"caption"`
}
