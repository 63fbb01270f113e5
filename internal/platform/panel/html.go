package panel

import (
	"bytes"
	"fmt"
	"html/template"
)

var htmlTmpl = template.Must(template.New("panel").Parse(`
{{- define "list"}}<ul class="small">{{range .}}<li>{{.}}</li>{{end}}</ul>{{end -}}
{{- if eq .Kind "plan" -}}
<div class="alert alert-success alert-dismissible fade show">
  <h5>{{.Title}}</h5>
  {{- with .Plan}}
  {{- if .PersonalizedInsights}}
  <div class="mb-3 p-3 insights">
    <h6>🔍 AI Insights:</h6>
    <p>{{.PersonalizedInsights}}</p>
  </div>
  {{- end}}
  <div class="row">
    <div class="col-md-4">
      <h6>🧘 Mental Health:</h6>
      {{template "list" .MentalHealth}}
    </div>
    <div class="col-md-4">
      <h6>💪 Fitness:</h6>
      {{template "list" .Fitness}}
    </div>
    <div class="col-md-4">
      <h6>🥗 Nutrition:</h6>
      {{template "list" .Nutrition}}
    </div>
  </div>
  {{- if .MotivationMessage}}
  <div class="mt-3 p-3 motivation">
    <h6>💪 Your AI Coach Says:</h6>
    <p><em>{{.MotivationMessage}}</em></p>
  </div>
  {{- end}}
  {{- end}}
  <button type="button" class="btn-close" data-bs-dismiss="alert"></button>
</div>
{{- else if eq .Kind "analysis" -}}
<div class="alert alert-info alert-dismissible fade show">
  <h5>{{.Title}}</h5>
  {{- with .Analysis}}
  <div class="row">
    <div class="col-md-6">
      <h6>🎭 Emotional State:</h6>
      <p><strong>{{.EmotionalState}}</strong></p>
      <h6>⚠️ Stress Indicators:</h6>
      {{template "list" .StressIndicators}}
    </div>
    <div class="col-md-6">
      <h6>🎯 Focus Areas:</h6>
      {{template "list" .RecommendedFocusAreas}}
      <h6>💙 AI Response:</h6>
      <p class="small"><em>{{.EmpathyMessage}}</em></p>
    </div>
  </div>
  {{- end}}
  <button type="button" class="btn-close" data-bs-dismiss="alert"></button>
</div>
{{- else -}}
<div class="alert {{if eq .Kind "failure"}}alert-danger{{else}}alert-info{{end}} alert-dismissible fade show">
  <h5>{{.Title}}</h5>
  <p>{{.Message}}</p>
  <button type="button" class="btn-close" data-bs-dismiss="alert"></button>
</div>
{{- end}}
`))

// RenderHTML renders p as the alert fragment the page swaps into its
// response area. Every value is escaped.
func RenderHTML(p Panel) (string, error) {
	if p.Kind == KindPlan && p.Plan == nil {
		return "", fmt.Errorf("plan panel %q has no plan", p.Title)
	}
	if p.Kind == KindAnalysis && p.Analysis == nil {
		return "", fmt.Errorf("analysis panel %q has no analysis", p.Title)
	}
	var buf bytes.Buffer
	if err := htmlTmpl.Execute(&buf, p); err != nil {
		return "", fmt.Errorf("render panel: %w", err)
	}
	return buf.String(), nil
}
