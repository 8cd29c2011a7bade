package domain

import "context"

const (
	DefaultTheme      = "Classic Blue"
	DefaultFontFamily = "Inter"
	DefaultFontWeight = "Medium"
	DefaultFontSize   = 14
	MinFontSize       = 10
	MaxFontSize       = 20
)

var ThemeNames = []string{
	"Classic Blue", "Professional Navy", "Modern Teal", "Corporate Gray",
	"Creative Purple", "Fresh Green", "Elegant Black", "Warm Orange",
}

var FontFamilies = []string{"Inter", "Roboto", "Times New Roman", "Arial", "Georgia", "Helvetica"}

var FontWeights = []string{"Light", "Normal", "Medium", "Semibold", "Bold", "Extrabold"}

// Customization is the persisted part of the preview options. The profile
// image never leaves the workspace.
type Customization struct {
	Theme      string `json:"theme" validate:"omitempty,cv_theme"`
	FontFamily string `json:"fontFamily" validate:"omitempty,cv_font_family"`
	FontWeight string `json:"fontWeight" validate:"omitempty,cv_font_weight"`
	FontSize   int    `json:"fontSize" validate:"omitempty,min=10,max=20"`
}

func DefaultCustomization() Customization {
	return Customization{
		Theme:      DefaultTheme,
		FontFamily: DefaultFontFamily,
		FontWeight: DefaultFontWeight,
		FontSize:   DefaultFontSize,
	}
}

// WithDefaults fills the unset options.
func (c Customization) WithDefaults() Customization {
	d := DefaultCustomization()
	if c.Theme == "" {
		c.Theme = d.Theme
	}
	if c.FontFamily == "" {
		c.FontFamily = d.FontFamily
	}
	if c.FontWeight == "" {
		c.FontWeight = d.FontWeight
	}
	if c.FontSize == 0 {
		c.FontSize = d.FontSize
	}
	return c
}

type PreviewOptions struct {
	Customization
	// ProfileImage is an inline data URL, shown only when it is a data:image URL.
	ProfileImage string `json:"-"`
}

type Catalog struct {
	Themes             []string           `json:"themes"`
	FontFamilies       []string           `json:"font_families"`
	FontWeights        []string           `json:"font_weights"`
	MinFontSize        int                `json:"min_font_size"`
	MaxFontSize        int                `json:"max_font_size"`
	SkillLevels        []SkillLevel       `json:"skill_levels"`
	Proficiencies      []Proficiency      `json:"proficiencies"`
	CommonSkills       []string           `json:"common_skills"`
	CommonLanguages    []string           `json:"common_languages"`
	InterestCategories []InterestCategory `json:"interest_categories"`
	CourseProviders    []string           `json:"course_providers"`
}

func DefaultCatalog() Catalog {
	return Catalog{
		Themes:             ThemeNames,
		FontFamilies:       FontFamilies,
		FontWeights:        FontWeights,
		MinFontSize:        MinFontSize,
		MaxFontSize:        MaxFontSize,
		SkillLevels:        SkillLevels,
		Proficiencies:      Proficiencies,
		CommonSkills:       CommonSkills,
		CommonLanguages:    CommonLanguages,
		InterestCategories: InterestCategories,
		CourseProviders:    CourseProviders,
	}
}

// PreviewRenderer turns a document into a styled HTML page. It never fails
// on empty input.
type PreviewRenderer interface {
	Render(doc *CVDocument, opts PreviewOptions) ([]byte, error)
}

type PreviewUsecase interface {
	Options(ctx context.Context, workspaceID string) (*PreviewOptions, error)
	SetOptions(ctx context.Context, workspaceID string, custom Customization) (*PreviewOptions, error)
	SetPhoto(ctx context.Context, workspaceID string, data []byte) error
	ClearPhoto(ctx context.Context, workspaceID string) error
	Render(ctx context.Context, workspaceID string) ([]byte, error)
}
