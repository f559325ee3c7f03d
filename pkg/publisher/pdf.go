package publisher

import (
	"bytes"
	"fmt"
	"io"

	"github.com/jung-kurt/gofpdf"
	"github.com/shouni/go-comic-kit/pkg/director"
	"github.com/shouni/go-comic-kit/pkg/domain"
)

// A4（mm）でのページレイアウト定数です。
const (
	pdfPageWidth    = 210.0
	pdfPageHeight   = 297.0
	pdfMargin       = 15.0
	pdfGutter       = 6.0
	pdfPanelHeight  = 75.0
	pdfCaptionInset = 4.0
	pdfBreakAt      = pdfPageHeight - pdfMargin - pdfPanelHeight
)

// PDFExporter はスクリプトのレンダリング可能なスナップショットを
// 1ページ=1章のPDFへ書き出します。
type PDFExporter struct {
	layout *director.LayoutManager
	global domain.TextConfig
}

// NewPDFExporter はグローバル文字設定を適用する PDFExporter を初期化します。
func NewPDFExporter(global domain.TextConfig) *PDFExporter {
	return &PDFExporter{
		layout: director.NewLayoutManager(),
		global: global,
	}
}

// Export はスクリプト全体をPDFへ書き出します。
// 画像を持たないパネルは枠と描写プロンプトのプレースホルダーで表現します。
func (e *PDFExporter) Export(w io.Writer, script domain.Script) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(script.Title, true)
	pdf.SetAutoPageBreak(false, pdfMargin)

	for _, page := range script.Pages {
		e.renderPage(pdf, page)
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("PDFの出力に失敗しました: %w", err)
	}
	return nil
}

func (e *PDFExporter) renderPage(pdf *gofpdf.Fpdf, page domain.Page) {
	pdf.AddPage()
	y := pdfMargin

	// 章タイトルとページ番号のヘッダー
	if page.ChapterTitle != "" {
		pdf.SetFont("Helvetica", "B", 16)
		pdf.SetXY(pdfMargin, y)
		pdf.CellFormat(pdfPageWidth-2*pdfMargin, 8, page.ChapterTitle, "B", 0, "C", false, 0, "")
		y += 12
	}
	pdf.SetFont("Helvetica", "B", 11)
	pdf.SetXY(pdfMargin, y)
	pdf.CellFormat(pdfPageWidth-2*pdfMargin, 6, fmt.Sprintf("Page %d", page.PageNumber), "", 0, "L", false, 0, "")
	y += 10

	contentW := pdfPageWidth - 2*pdfMargin
	halfW := (contentW - pdfGutter) / 2
	col := 0

	for i, panel := range page.Panels {
		span := e.layout.SpanFor(page.Layout, panel, i, len(page.Panels))

		if span == domain.SpanFull && col == 1 {
			col = 0
			y += pdfPanelHeight + pdfGutter
		}
		if y > pdfBreakAt {
			pdf.AddPage()
			y = pdfMargin
			col = 0
		}

		w := halfW
		x := pdfMargin + float64(col)*(halfW+pdfGutter)
		if span == domain.SpanFull {
			w = contentW
			x = pdfMargin
		}

		e.renderPanel(pdf, panel, i, x, y, w)

		if span == domain.SpanFull {
			col = 0
			y += pdfPanelHeight + pdfGutter
		} else {
			col++
			if col == 2 {
				col = 0
				y += pdfPanelHeight + pdfGutter
			}
		}
	}
}

func (e *PDFExporter) renderPanel(pdf *gofpdf.Fpdf, panel domain.Panel, ordinal int, x, y, w float64) {
	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(0.6)
	pdf.Rect(x, y, w, pdfPanelHeight, "D")

	if panel.HasImage() {
		e.placeImage(pdf, panel, ordinal, x, y, w)
	} else {
		pdf.SetFont("Helvetica", "I", 8)
		pdf.SetTextColor(120, 120, 120)
		pdf.SetXY(x+2, y+2)
		pdf.MultiCell(w-4, 4, pdf.UnicodeTranslatorFromDescriptor("")(panel.Description), "", "L", false)
		pdf.SetTextColor(0, 0, 0)
	}

	if panel.Caption != "" {
		e.renderCaption(pdf, panel, x, y, w)
	}
}

// placeImage は data URI の画像をパネル枠内へ収めます。
// gofpdf が扱えない形式はプレースホルダーのままにします。
func (e *PDFExporter) placeImage(pdf *gofpdf.Fpdf, panel domain.Panel, ordinal int, x, y, w float64) {
	mime, data, err := DecodeImageRef(panel.ImageRef)
	if err != nil {
		return
	}
	var imageType string
	switch mime {
	case "image/png":
		imageType = "PNG"
	case "image/jpeg":
		imageType = "JPG"
	default:
		return
	}

	name := fmt.Sprintf("panel-%s-%d", panel.ID, ordinal)
	opts := gofpdf.ImageOptions{ImageType: imageType}
	pdf.RegisterImageOptionsReader(name, opts, bytes.NewReader(data))
	pdf.ImageOptions(name, x+1, y+1, w-2, pdfPanelHeight-2, false, opts, 0, "")
}

// renderCaption は実効スタイル（グローバル + パネル上書き）で
// 吹き出し風のキャプション帯を描画します。
func (e *PDFExporter) renderCaption(pdf *gofpdf.Fpdf, panel domain.Panel, x, y, w float64) {
	style := director.EffectiveStyle(e.global, panel.Style)

	boxW := w - 2*pdfCaptionInset
	boxH := 12.0
	boxX := x + pdfCaptionInset
	boxY := y + pdfPanelHeight - boxH - pdfCaptionInset

	pdf.SetFillColor(255, 255, 255)
	switch style.BubbleStyle {
	case domain.BubbleShout:
		pdf.SetLineWidth(1.0)
	case domain.BubbleThought:
		pdf.SetLineWidth(0.3)
		pdf.SetDashPattern([]float64{1.5, 1.5}, 0)
	default:
		pdf.SetLineWidth(0.4)
	}
	pdf.Rect(boxX, boxY, boxW, boxH, "FD")
	pdf.SetDashPattern([]float64{}, 0)

	r, g, b := hexToRGB(style.Color)
	pdf.SetTextColor(r, g, b)
	pdf.SetFont("Helvetica", "", 9*style.FontSize)
	pdf.SetXY(boxX+1, boxY+1)
	pdf.MultiCell(boxW-2, 4, pdf.UnicodeTranslatorFromDescriptor("")(panel.Caption), "", "C", false)
	pdf.SetTextColor(0, 0, 0)
}

// hexToRGB は "#rrggbb" 形式の色値を分解します。不正な値は黒になります。
func hexToRGB(hex string) (int, int, int) {
	var r, g, b int
	if n, err := fmt.Sscanf(hex, "#%02x%02x%02x", &r, &g, &b); err != nil || n != 3 {
		return 0, 0, 0
	}
	return r, g, b
}
