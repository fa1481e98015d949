package suggest

import (
	"fmt"
	"strings"

	"github.com/riskops-lab/manrisk/pkg/domain/model"
	"github.com/riskops-lab/manrisk/pkg/domain/types"
)

// System prompts fix the working language and the closed enumerations the
// model may use. The response schema constrains structure; these constrain
// vocabulary. Neither is trusted: output still passes the sanitizers.

var causeSystemPrompt = fmt.Sprintf(`Anda adalah asisten manajemen risiko untuk instansi pemerintah Indonesia.
Tugas Anda: mengusulkan penyebab risiko (metode Fishbone) untuk sebuah potensi risiko.

Aturan:
1. Jawab dalam Bahasa Indonesia.
2. Field "source" harus salah satu dari: %s. Jika tidak yakin, kosongkan.
3. Usulkan paling banyak 5 penyebab yang spesifik dan dapat ditindaklanjuti.`,
	enumList(types.AllRiskSources()))

var analysisSystemPrompt = fmt.Sprintf(`Anda adalah asisten manajemen risiko untuk instansi pemerintah Indonesia.
Tugas Anda: menilai kemungkinan dan dampak sebuah penyebab risiko.

Aturan:
1. Jawab dalam Bahasa Indonesia.
2. "suggestedLikelihood" harus salah satu dari: %s.
3. "suggestedImpact" harus salah satu dari: %s.
4. Sertakan justifikasi singkat untuk setiap penilaian.`,
	enumList(types.AllLikelihoods()), enumList(types.AllImpacts()))

var controlSystemPrompt = fmt.Sprintf(`Anda adalah asisten manajemen risiko untuk instansi pemerintah Indonesia.
Tugas Anda: mengusulkan rencana pengendalian untuk sebuah penyebab risiko.

Aturan:
1. Jawab dalam Bahasa Indonesia.
2. "suggestedControlType" harus salah satu dari: %s (Prv=Preventif, RM=Mitigasi Risiko, Crr=Korektif).
3. Setiap usulan wajib memiliki deskripsi dan justifikasi yang tidak kosong.`,
	enumList(types.AllControlMeasureTypes()))

const kriSystemPrompt = `Anda adalah asisten manajemen risiko untuk instansi pemerintah Indonesia.
Tugas Anda: mengusulkan Key Risk Indicator (KRI) yang terukur dan toleransi risikonya untuk sebuah penyebab risiko.

Aturan:
1. Jawab dalam Bahasa Indonesia.
2. KRI harus terukur (angka, persentase, atau frekuensi).
3. Sertakan justifikasi untuk KRI maupun toleransi.`

func enumList[T ~string](values []T) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = string(v)
	}
	return strings.Join(parts, ", ")
}

func writeRiskContext(sb *strings.Builder, risk *model.PotentialRisk) {
	fmt.Fprintf(sb, "## Potensi Risiko\n%s\n", risk.Description)
	if risk.Category != nil {
		fmt.Fprintf(sb, "Kategori: %s\n", *risk.Category)
	}
	if risk.Owner != "" {
		fmt.Fprintf(sb, "Pemilik: %s\n", risk.Owner)
	}
}

func writeCauseContext(sb *strings.Builder, cause *model.RiskCause) {
	fmt.Fprintf(sb, "\n## Penyebab Risiko\n%s\n", cause.Description)
	if cause.Source != nil {
		fmt.Fprintf(sb, "Sumber: %s\n", *cause.Source)
	}
	if cause.KeyRiskIndicator != "" {
		fmt.Fprintf(sb, "KRI saat ini: %s\n", cause.KeyRiskIndicator)
	}
}

func buildCausePrompt(goal *model.Goal, risk *model.PotentialRisk) string {
	var sb strings.Builder
	if goal != nil {
		fmt.Fprintf(&sb, "## Sasaran\n%s\n", goal.Name)
		if goal.Description != "" {
			fmt.Fprintf(&sb, "%s\n", goal.Description)
		}
		sb.WriteString("\n")
	}
	writeRiskContext(&sb, risk)
	sb.WriteString("\nUsulkan penyebab-penyebab risiko di atas.\n")
	return sb.String()
}

func buildAnalysisPrompt(risk *model.PotentialRisk, cause *model.RiskCause) string {
	var sb strings.Builder
	writeRiskContext(&sb, risk)
	writeCauseContext(&sb, cause)
	sb.WriteString("\nNilai kemungkinan dan dampak penyebab risiko di atas.\n")
	return sb.String()
}

func buildControlPrompt(risk *model.PotentialRisk, cause *model.RiskCause) string {
	var sb strings.Builder
	writeRiskContext(&sb, risk)
	writeCauseContext(&sb, cause)
	sb.WriteString("\nUsulkan rencana pengendalian untuk penyebab risiko di atas.\n")
	return sb.String()
}

func buildKRIPrompt(risk *model.PotentialRisk, cause *model.RiskCause) string {
	var sb strings.Builder
	writeRiskContext(&sb, risk)
	writeCauseContext(&sb, cause)
	sb.WriteString("\nUsulkan KRI dan toleransi risiko untuk penyebab risiko di atas.\n")
	return sb.String()
}
