package preview

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"cvcraft-backend/internal/domain"
)

type palette struct {
	Primary   string
	Secondary string
}

var themes = map[string]palette{
	"Classic Blue":      {Primary: "#334155", Secondary: "#2563eb"},
	"Professional Navy": {Primary: "#1e3a8a", Secondary: "#1d4ed8"},
	"Modern Teal":       {Primary: "#0f766e", Secondary: "#0d9488"},
	"Corporate Gray":    {Primary: "#374151", Secondary: "#4b5563"},
	"Creative Purple":   {Primary: "#7e22ce", Secondary: "#9333ea"},
	"Fresh Green":       {Primary: "#15803d", Secondary: "#16a34a"},
	"Elegant Black":     {Primary: "#000000", Secondary: "#1f2937"},
	"Warm Orange":       {Primary: "#c2410c", Secondary: "#ea580c"},
}

var fontStacks = map[string]string{
	"Inter":           "Inter, ui-sans-serif, system-ui, sans-serif",
	"Roboto":          "Roboto, ui-monospace, monospace",
	"Times New Roman": "\"Times New Roman\", Times, serif",
	"Arial":           "Arial, sans-serif",
	"Georgia":         "Georgia, serif",
	"Helvetica":       "Helvetica, Arial, sans-serif",
}

var fontWeights = map[string]int{
	"Light":     300,
	"Normal":    400,
	"Medium":    500,
	"Semibold":  600,
	"Bold":      700,
	"Extrabold": 800,
}

// placeholderInterests fill the interests block of an empty CV.
var placeholderInterests = []string{"Technology", "Travel", "Photography", "Reading", "Music", "Volunteering"}

// Renderer renders a CV as a standalone HTML page.
type Renderer struct {
	tmpl *template.Template
}

func NewRenderer() *Renderer {
	return &Renderer{tmpl: template.Must(template.New("cv").Parse(cvTemplate))}
}

// Render never fails on missing content: empty sections show placeholders
// and unknown options fall back to the defaults.
func (r *Renderer) Render(doc *domain.CVDocument, opts domain.PreviewOptions) ([]byte, error) {
	if doc == nil {
		doc = domain.NewCVDocument()
	}
	v := buildView(doc, opts)

	var buf bytes.Buffer
	if err := r.tmpl.Execute(&buf, v); err != nil {
		return nil, fmt.Errorf("failed to render preview: %w", err)
	}
	return buf.Bytes(), nil
}

type leveled struct {
	Name string
	Dots []bool
}

type contact struct {
	Value       string
	Placeholder bool
}

type experienceView struct {
	JobTitle string
	Company  string
	Location string
	Period   string
	Lines    []string
}

type courseView struct {
	Title          string
	Provider       string
	CompletionDate string
	CertificateURL string
	Skills         []string
}

type view struct {
	Style       template.CSS
	Name        string
	Photo       template.URL
	Contacts    []contact
	Summary     string
	Skills      []leveled
	Languages   []leveled
	Interests   []string
	NoInterests bool
	PlaceInts   []string
	Education   []domain.EducationEntry
	Experience  []experienceView
	Courses     []courseView
}

func buildView(doc *domain.CVDocument, opts domain.PreviewOptions) view {
	info := doc.PersonalInfo
	v := view{
		Style:   stylesheet(opts.Customization),
		Name:    strings.ToUpper(strings.TrimSpace(info.FullName)),
		Summary: strings.TrimSpace(info.Summary),
		Contacts: []contact{
			contactOr(info.FullName, "Votre nom complet"),
			contactOr(info.Email, "votre.email@exemple.com"),
			contactOr(info.Phone, "+33 1 23 45 67 89"),
			contactOr(info.Location, "Votre ville, Pays"),
			contactOr(info.Website, "votre-site.com"),
			contactOr(info.LinkedIn, "linkedin.com/in/votre-profil"),
		},
		Education: doc.Education,
	}
	if strings.HasPrefix(opts.ProfileImage, "data:image/") {
		v.Photo = template.URL(opts.ProfileImage)
	}

	for _, s := range doc.Skills {
		v.Skills = append(v.Skills, leveled{Name: s.Name, Dots: dots(skillDots(s.Level))})
	}
	for _, l := range doc.Languages {
		v.Languages = append(v.Languages, leveled{Name: l.Name, Dots: dots(languageDots(l.Proficiency))})
	}
	for _, i := range doc.Interests {
		v.Interests = append(v.Interests, i.Name)
	}
	if len(v.Interests) == 0 {
		v.NoInterests = true
		v.PlaceInts = placeholderInterests
	}
	for _, e := range doc.Experience {
		v.Experience = append(v.Experience, experienceView{
			JobTitle: e.JobTitle,
			Company:  e.Company,
			Location: e.Location,
			Period:   period(e),
			Lines:    lines(e.Description),
		})
	}
	for _, c := range doc.Courses {
		cv := courseView{
			Title:          c.Title,
			Provider:       c.Provider,
			CompletionDate: c.CompletionDate,
			Skills:         c.Skills,
		}
		if strings.HasPrefix(c.CertificateURL, "https://") || strings.HasPrefix(c.CertificateURL, "http://") {
			cv.CertificateURL = c.CertificateURL
		}
		v.Courses = append(v.Courses, cv)
	}
	return v
}

func contactOr(value, placeholder string) contact {
	if strings.TrimSpace(value) == "" {
		return contact{Value: placeholder, Placeholder: true}
	}
	return contact{Value: value}
}

func skillDots(level domain.SkillLevel) int {
	switch level {
	case domain.SkillBeginner:
		return 2
	case domain.SkillIntermediate:
		return 3
	case domain.SkillAdvanced:
		return 4
	case domain.SkillExpert:
		return 5
	default:
		return 3
	}
}

func languageDots(p domain.Proficiency) int {
	switch p {
	case domain.ProficiencyBeginner:
		return 2
	case domain.ProficiencyIntermediate:
		return 3
	case domain.ProficiencyAdvanced:
		return 4
	case domain.ProficiencyFluent, domain.ProficiencyNative:
		return 5
	default:
		return 3
	}
}

func dots(filled int) []bool {
	out := make([]bool, 5)
	for i := range out {
		out[i] = i < filled
	}
	return out
}

func period(e domain.ExperienceEntry) string {
	end := e.EndDate
	if e.Current {
		end = "Present"
	}
	switch {
	case e.StartDate == "" && end == "":
		return ""
	case e.StartDate == "":
		return end
	case end == "":
		return e.StartDate
	}
	return e.StartDate + " - " + end
}

func lines(text string) []string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(strings.TrimLeft(strings.TrimSpace(line), "-•*"))
		if line != "" {
			out = append(out, line)
		}
	}
	return out
}

// stylesheet builds the page CSS from the fixed option tables. It is the
// only markup not escaped by the template, so it never embeds user input.
func stylesheet(c domain.Customization) template.CSS {
	c = c.WithDefaults()
	theme, ok := themes[c.Theme]
	if !ok {
		theme = themes[domain.DefaultTheme]
	}
	font, ok := fontStacks[c.FontFamily]
	if !ok {
		font = fontStacks[domain.DefaultFontFamily]
	}
	weight, ok := fontWeights[c.FontWeight]
	if !ok {
		weight = fontWeights[domain.DefaultFontWeight]
	}
	size := ClampFontSize(c.FontSize)

	return template.CSS(fmt.Sprintf(
		":root{--primary:%s;--secondary:%s;--font:%s;--weight:%d;--size:%dpx}",
		theme.Primary, theme.Secondary, font, weight, size,
	))
}

func ClampFontSize(size int) int {
	if size < domain.MinFontSize {
		return domain.MinFontSize
	}
	if size > domain.MaxFontSize {
		return domain.MaxFontSize
	}
	return size
}

const cvTemplate = `<!DOCTYPE html>
<html lang="fr">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{if .Name}}{{.Name}}{{else}}CV{{end}}</title>
<style>
{{.Style}}
*{box-sizing:border-box}
body{margin:0;background:#f3f4f6;font-family:var(--font);font-weight:var(--weight);font-size:var(--size);color:#1f2937}
.cv{display:flex;max-width:960px;margin:24px auto;background:#fff;box-shadow:0 1px 3px rgba(0,0,0,.15)}
.sidebar{width:33.333%;background:var(--primary);color:#fff;padding:32px 24px}
.main{width:66.667%;padding:32px}
.sidebar h1{font-size:1.6em;letter-spacing:.05em;margin:0 0 16px}
.sidebar h2{font-size:1.1em;margin:24px 0 12px;color:#bfdbfe}
.main h2{font-size:1.3em;margin:0 0 16px;color:var(--secondary)}
.main section{margin-bottom:32px}
.photo{width:128px;height:128px;border-radius:50%;object-fit:cover;border:4px solid rgba(255,255,255,.3);display:block;margin:0 auto 16px}
.muted{opacity:.6}
.placeholder{color:#9ca3af;font-style:italic}
.row{display:flex;justify-content:space-between;align-items:center;margin-bottom:8px}
.dots{display:flex;gap:4px}
.dot{width:8px;height:8px;border-radius:50%;background:rgba(255,255,255,.3)}
.dot.on{background:#fff}
.tags{display:flex;flex-wrap:wrap;gap:6px;padding:0;margin:0;list-style:none}
.tags li{background:rgba(255,255,255,.15);border-radius:4px;padding:2px 8px;font-size:.85em}
.entry{border-left:2px solid #e2e8f0;padding-left:16px;margin-bottom:16px}
.entry h3{margin:0;font-size:1em}
.badge{font-size:.75em;background:#f1f5f9;border-radius:4px;padding:2px 8px;color:#475569}
.org{font-weight:600;color:var(--secondary);margin:4px 0;font-size:.9em;text-transform:uppercase}
.small{font-size:.8em;color:#6b7280}
.main .tags li{background:#f1f5f9;color:#334155}
</style>
</head>
<body>
<div class="cv" id="cv-content">
<aside class="sidebar">
{{if .Name}}<h1>{{.Name}}</h1>{{else}}<h1 class="muted">VOTRE NOM</h1>{{end}}
{{if .Photo}}<img class="photo" src="{{.Photo}}" alt="Profile">{{end}}
<h2>Informations personnelles</h2>
{{range .Contacts}}<div class="{{if .Placeholder}}muted{{end}}">{{.Value}}</div>
{{end}}
<h2>Compétences</h2>
{{range .Skills}}<div class="row"><span>{{.Name}}</span><span class="dots">{{range .Dots}}<span class="dot{{if .}} on{{end}}"></span>{{end}}</span></div>
{{else}}<div class="muted">Vos compétences apparaîtront ici</div>
{{end}}
<h2>Langues</h2>
{{range .Languages}}<div class="row"><span>{{.Name}}</span><span class="dots">{{range .Dots}}<span class="dot{{if .}} on{{end}}"></span>{{end}}</span></div>
{{else}}<div class="muted">Vos langues apparaîtront ici</div>
{{end}}
<h2>Centres d'intérêt</h2>
<ul class="tags{{if .NoInterests}} muted{{end}}">
{{range .Interests}}<li>{{.}}</li>{{end}}{{range .PlaceInts}}<li>{{.}}</li>{{end}}
</ul>
</aside>
<main class="main">
<section>
<h2>Profil</h2>
{{if .Summary}}<p>{{.Summary}}</p>{{else}}<p class="placeholder">Votre résumé professionnel apparaîtra ici...</p>{{end}}
</section>
<section>
<h2>Formation</h2>
{{range .Education}}<div class="entry">
<div class="row"><h3>{{.Degree}}{{if .Field}} - {{.Field}}{{end}}</h3>{{if .GraduationDate}}<span class="badge">{{.GraduationDate}}</span>{{end}}</div>
{{if .School}}<p class="org">{{.School}}</p>{{end}}
{{if .Location}}<p class="small">{{.Location}}</p>{{end}}
{{if .GPA}}<p class="small">GPA: {{.GPA}}</p>{{end}}
</div>
{{else}}<div class="entry placeholder">
<div class="row"><h3>Votre diplôme</h3><span class="badge">Année</span></div>
<p class="org">VOTRE UNIVERSITÉ</p>
<p class="small">Ville, Pays</p>
</div>
{{end}}
</section>
<section>
<h2>Expérience professionnelle</h2>
{{range .Experience}}<div class="entry">
<div class="row"><h3>{{.JobTitle}}</h3>{{if .Period}}<span class="badge">{{.Period}}</span>{{end}}</div>
{{if .Company}}<p class="org">{{.Company}}{{if .Location}}, {{.Location}}{{end}}</p>{{end}}
{{if .Lines}}<ul>{{range .Lines}}<li>{{.}}</li>{{end}}</ul>{{end}}
</div>
{{else}}<div class="entry placeholder">
<div class="row"><h3>Votre poste</h3><span class="badge">Période</span></div>
<p class="org">VOTRE ENTREPRISE, Ville</p>
<ul><li>Vos responsabilités et réalisations</li><li>Projets importants menés</li><li>Compétences développées</li></ul>
</div>
{{end}}
</section>
<section>
<h2>Cours</h2>
{{range .Courses}}<div class="entry">
<div class="row"><h3>{{.Title}}</h3>{{if .CompletionDate}}<span class="badge">{{.CompletionDate}}</span>{{end}}</div>
{{if .Provider}}<p class="org">{{.Provider}}</p>{{end}}
{{if .Skills}}<ul class="tags">{{range .Skills}}<li>{{.}}</li>{{end}}</ul>{{end}}
{{if .CertificateURL}}<p class="small"><a href="{{.CertificateURL}}">Certificat</a></p>{{end}}
</div>
{{else}}<div class="entry placeholder">
<div class="row"><h3>Vos certifications</h3><span class="badge">Année</span></div>
<div class="row"><h3>Formations suivies</h3><span class="badge">Année</span></div>
</div>
{{end}}
</section>
</main>
</div>
</body>
</html>
`
