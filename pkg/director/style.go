package director

import "github.com/shouni/go-comic-kit/pkg/domain"

// 言語ごとのデフォルトフォント定義です。
const (
	DefaultFontFamily      = "Comic Neue"
	DefaultTitleFontFamily = "Bangers"
	ChineseFontFamily      = "ZCOOL QingKe HuangYou"
)

// DefaultTextConfig は言語に応じた初期のグローバル文字設定を返します。
// 中国語は本文・タイトルとも専用フォントに切り替えます。
func DefaultTextConfig(language string) domain.TextConfig {
	cfg := domain.TextConfig{
		FontFamily:      DefaultFontFamily,
		TitleFontFamily: DefaultTitleFontFamily,
		FontSize:        1.0,
		Color:           "#000000",
		BubbleStyle:     domain.BubbleStandard,
	}
	if language == "Chinese" {
		cfg.FontFamily = ChineseFontFamily
		cfg.TitleFontFamily = ChineseFontFamily
	}
	return cfg
}

// EffectiveStyle はグローバル設定とパネル個別の上書きをフィールド単位で
// マージし、実際の描画に使う設定を返します。上書きが nil の場合は
// グローバル設定がそのまま返ります（全か無かのマージではありません）。
func EffectiveStyle(global domain.TextConfig, override *domain.TextOverride) domain.TextConfig {
	out := global
	out.FontSize = domain.ClampFontScale(out.FontSize)
	if override == nil {
		return out
	}
	if override.FontFamily != nil {
		out.FontFamily = *override.FontFamily
	}
	if override.TitleFontFamily != nil {
		out.TitleFontFamily = *override.TitleFontFamily
	}
	if override.FontSize != nil {
		out.FontSize = domain.ClampFontScale(*override.FontSize)
	}
	if override.Color != nil {
		out.Color = *override.Color
	}
	if override.BubbleStyle != nil {
		out.BubbleStyle = *override.BubbleStyle
	}
	return out
}
