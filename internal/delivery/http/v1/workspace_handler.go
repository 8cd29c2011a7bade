package v1

import (
	"net/http"
	"strconv"

	"cvcraft-backend/internal/delivery/http/middleware"
	"cvcraft-backend/internal/delivery/http/response"
	"cvcraft-backend/internal/domain"
	"cvcraft-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type WorkspaceHandler struct {
	workspaceUC  domain.WorkspaceUsecase
	cookieSecure bool
}

// NewWorkspaceHandler registers the builder routes. root carries the workspace
// id but does not require it; scoped rejects requests without one.
func NewWorkspaceHandler(root, scoped *gin.RouterGroup, workspaceUC domain.WorkspaceUsecase, cookieSecure bool) {
	handler := &WorkspaceHandler{
		workspaceUC:  workspaceUC,
		cookieSecure: cookieSecure,
	}

	root.POST("/workspace", handler.Open)

	scoped.GET("", handler.State)
	scoped.DELETE("", handler.Close)
	scoped.GET("/document", handler.Document)
	scoped.POST("/save", handler.Save)
	scoped.GET("/notices", handler.Notices)

	scoped.PUT("/personal-info", handler.UpdatePersonalInfo)
	scoped.POST("/sections/:section", handler.AddEntry)
	scoped.PATCH("/sections/:section/:id", handler.UpdateEntry)
	scoped.DELETE("/sections/:section/:id", handler.RemoveEntry)

	scoped.POST("/courses/:id/skills", handler.AddCourseSkill)
	scoped.DELETE("/courses/:id/skills/:index", handler.RemoveCourseSkill)

	scoped.POST("/skills/suggest", handler.SuggestSkills)
	scoped.POST("/languages/common", handler.AddCommonLanguage)
	scoped.POST("/interests/quick", handler.AddQuickInterest)
}

func entryIDParam(c *gin.Context, name string) (domain.EntryID, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid entry id"))
		return 0, false
	}
	return domain.EntryID(id), true
}

// Open godoc
// @Summary      Open workspace
// @Description  Opens the caller's workspace, or starts a new one when none is given. The session is resolved before the response: signed-in users get their remote document, anonymous users their local snapshot.
// @Tags         workspace
// @Produce      json
// @Param        X-Workspace-ID  header    string  false  "Workspace id"
// @Success      200  {object}  response.Response{data=domain.WorkspaceState}
// @Router       /workspace [post]
func (h *WorkspaceHandler) Open(c *gin.Context) {
	state, err := h.workspaceUC.Open(c.Request.Context(), middleware.WorkspaceID(c))
	if err != nil {
		c.Error(err)
		return
	}
	middleware.SetWorkspaceCookie(c, state.ID, h.cookieSecure)
	response.Success(c, http.StatusOK, "Workspace ready", state)
}

// State godoc
// @Summary      Workspace state
// @Tags         workspace
// @Produce      json
// @Param        X-Workspace-ID  header    string  true  "Workspace id"
// @Success      200  {object}  response.Response{data=domain.WorkspaceState}
// @Failure      404  {object}  response.Response
// @Router       /workspace [get]
func (h *WorkspaceHandler) State(c *gin.Context) {
	state, err := h.workspaceUC.State(c.Request.Context(), middleware.WorkspaceID(c))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Workspace state", state)
}

// Close godoc
// @Summary      Close workspace
// @Description  Flushes any pending save and releases the workspace.
// @Tags         workspace
// @Produce      json
// @Param        X-Workspace-ID  header    string  true  "Workspace id"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /workspace [delete]
func (h *WorkspaceHandler) Close(c *gin.Context) {
	if err := h.workspaceUC.Close(c.Request.Context(), middleware.WorkspaceID(c)); err != nil {
		c.Error(err)
		return
	}
	middleware.ClearWorkspaceCookie(c, h.cookieSecure)
	response.Success(c, http.StatusOK, "Workspace closed", nil)
}

// Document godoc
// @Summary      Current document
// @Tags         workspace
// @Produce      json
// @Param        X-Workspace-ID  header    string  true  "Workspace id"
// @Success      200  {object}  response.Response{data=domain.CVDocument}
// @Router       /workspace/document [get]
func (h *WorkspaceHandler) Document(c *gin.Context) {
	doc, err := h.workspaceUC.Document(c.Request.Context(), middleware.WorkspaceID(c))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Document", doc)
}

// Save godoc
// @Summary      Save now
// @Description  Writes the document immediately and cancels the pending autosave.
// @Tags         workspace
// @Produce      json
// @Param        X-Workspace-ID  header    string  true  "Workspace id"
// @Success      200  {object}  response.Response{data=domain.SaveStatus}
// @Router       /workspace/save [post]
func (h *WorkspaceHandler) Save(c *gin.Context) {
	status, err := h.workspaceUC.Save(c.Request.Context(), middleware.WorkspaceID(c))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Save attempted", status)
}

// Notices godoc
// @Summary      Drain notices
// @Tags         workspace
// @Produce      json
// @Param        X-Workspace-ID  header    string  true  "Workspace id"
// @Success      200  {object}  response.Response{data=[]domain.Notice}
// @Router       /workspace/notices [get]
func (h *WorkspaceHandler) Notices(c *gin.Context) {
	notices, err := h.workspaceUC.Notices(c.Request.Context(), middleware.WorkspaceID(c))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Notices", notices)
}

// UpdatePersonalInfo godoc
// @Summary      Update personal info
// @Description  Values are stored as typed. Email and phone values that do not look valid yet come back as warnings.
// @Tags         sections
// @Accept       json
// @Produce      json
// @Param        X-Workspace-ID  header    string                     true  "Workspace id"
// @Param        body            body      domain.FieldUpdateRequest  true  "Field and value"
// @Success      200  {object}  response.Response{data=domain.CVDocument}
// @Failure      400  {object}  response.Response
// @Router       /workspace/personal-info [put]
func (h *WorkspaceHandler) UpdatePersonalInfo(c *gin.Context) {
	var req domain.FieldUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("Request must name a field"))
		return
	}
	doc, err := h.workspaceUC.UpdatePersonalInfo(c.Request.Context(), middleware.WorkspaceID(c), req.Field, req.Value)
	if err != nil {
		c.Error(err)
		return
	}
	h.respondEdited(c, "Personal info updated", doc)
}

// AddEntry godoc
// @Summary      Add entry
// @Description  Appends an entry to experience, education, skills, languages, interests or courses. Named sections ignore blank and duplicate names.
// @Tags         sections
// @Accept       json
// @Produce      json
// @Param        X-Workspace-ID  header    string                true   "Workspace id"
// @Param        section         path      string                true   "Section name"
// @Param        body            body      domain.NewEntryInput  false  "Name and level for named sections"
// @Success      201  {object}  response.Response{data=domain.CVDocument}
// @Failure      404  {object}  response.Response
// @Router       /workspace/sections/{section} [post]
func (h *WorkspaceHandler) AddEntry(c *gin.Context) {
	var input domain.NewEntryInput
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&input); err != nil {
			c.Error(apperror.BadRequest("Invalid request body"))
			return
		}
	}
	doc, err := h.workspaceUC.AddEntry(c.Request.Context(), middleware.WorkspaceID(c), domain.SectionName(c.Param("section")), input)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Entry added", doc)
}

// UpdateEntry godoc
// @Summary      Update entry field
// @Description  Unknown fields, wrong value types and unknown levels are rejected. Dates and URLs that do not look valid yet are stored and come back as warnings.
// @Tags         sections
// @Accept       json
// @Produce      json
// @Param        X-Workspace-ID  header    string                     true  "Workspace id"
// @Param        section         path      string                     true  "Section name"
// @Param        id              path      int                        true  "Entry id"
// @Param        body            body      domain.FieldUpdateRequest  true  "Field and value"
// @Success      200  {object}  response.Response{data=domain.CVDocument}
// @Failure      400  {object}  response.Response
// @Router       /workspace/sections/{section}/{id} [patch]
func (h *WorkspaceHandler) UpdateEntry(c *gin.Context) {
	id, ok := entryIDParam(c, "id")
	if !ok {
		return
	}
	var req domain.FieldUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("Request must name a field"))
		return
	}
	doc, err := h.workspaceUC.UpdateEntry(c.Request.Context(), middleware.WorkspaceID(c), domain.SectionName(c.Param("section")), id, req.Field, req.Value)
	if err != nil {
		c.Error(err)
		return
	}
	h.respondEdited(c, "Entry updated", doc)
}

// respondEdited answers a field update with the document and, when some
// stored value breaks a format rule, the matching warnings.
func (h *WorkspaceHandler) respondEdited(c *gin.Context, message string, doc *domain.CVDocument) {
	warnings, err := h.workspaceUC.Warnings(c.Request.Context(), middleware.WorkspaceID(c))
	if err != nil || len(warnings) == 0 {
		response.Success(c, http.StatusOK, message, doc)
		return
	}
	response.SuccessWithWarnings(c, http.StatusOK, message, doc, warnings)
}

// RemoveEntry godoc
// @Summary      Remove entry
// @Tags         sections
// @Produce      json
// @Param        X-Workspace-ID  header    string  true  "Workspace id"
// @Param        section         path      string  true  "Section name"
// @Param        id              path      int     true  "Entry id"
// @Success      200  {object}  response.Response{data=domain.CVDocument}
// @Router       /workspace/sections/{section}/{id} [delete]
func (h *WorkspaceHandler) RemoveEntry(c *gin.Context) {
	id, ok := entryIDParam(c, "id")
	if !ok {
		return
	}
	doc, err := h.workspaceUC.RemoveEntry(c.Request.Context(), middleware.WorkspaceID(c), domain.SectionName(c.Param("section")), id)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Entry removed", doc)
}

// AddCourseSkill godoc
// @Summary      Tag a course with a skill
// @Tags         sections
// @Accept       json
// @Produce      json
// @Param        X-Workspace-ID  header    string                     true  "Workspace id"
// @Param        id              path      int                        true  "Course id"
// @Param        body            body      domain.CourseSkillRequest  true  "Skill"
// @Success      200  {object}  response.Response{data=domain.CVDocument}
// @Router       /workspace/courses/{id}/skills [post]
func (h *WorkspaceHandler) AddCourseSkill(c *gin.Context) {
	id, ok := entryIDParam(c, "id")
	if !ok {
		return
	}
	var req domain.CourseSkillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("Skill is required"))
		return
	}
	doc, err := h.workspaceUC.AddCourseSkill(c.Request.Context(), middleware.WorkspaceID(c), id, req.Skill)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Course skill added", doc)
}

// RemoveCourseSkill godoc
// @Summary      Remove a course skill
// @Tags         sections
// @Produce      json
// @Param        X-Workspace-ID  header    string  true  "Workspace id"
// @Param        id              path      int     true  "Course id"
// @Param        index           path      int     true  "Skill position"
// @Success      200  {object}  response.Response{data=domain.CVDocument}
// @Router       /workspace/courses/{id}/skills/{index} [delete]
func (h *WorkspaceHandler) RemoveCourseSkill(c *gin.Context) {
	id, ok := entryIDParam(c, "id")
	if !ok {
		return
	}
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.Error(apperror.BadRequest("Invalid skill index"))
		return
	}
	doc, err := h.workspaceUC.RemoveCourseSkill(c.Request.Context(), middleware.WorkspaceID(c), id, index)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Course skill removed", doc)
}

// SuggestSkills godoc
// @Summary      Suggest skills
// @Description  Adds up to five common skills the document does not list yet.
// @Tags         sections
// @Produce      json
// @Param        X-Workspace-ID  header    string  true  "Workspace id"
// @Success      200  {object}  response.Response{data=domain.CVDocument}
// @Router       /workspace/skills/suggest [post]
func (h *WorkspaceHandler) SuggestSkills(c *gin.Context) {
	doc, err := h.workspaceUC.SuggestSkills(c.Request.Context(), middleware.WorkspaceID(c))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Skills suggested", doc)
}

// AddCommonLanguage godoc
// @Summary      Add a common language
// @Tags         sections
// @Accept       json
// @Produce      json
// @Param        X-Workspace-ID  header    string                    true  "Workspace id"
// @Param        body            body      domain.NamedEntryRequest  true  "Language"
// @Success      201  {object}  response.Response{data=domain.CVDocument}
// @Router       /workspace/languages/common [post]
func (h *WorkspaceHandler) AddCommonLanguage(c *gin.Context) {
	h.addNamed(c, domain.SectionLanguages, "Language added")
}

// AddQuickInterest godoc
// @Summary      Quick-add an interest
// @Tags         sections
// @Accept       json
// @Produce      json
// @Param        X-Workspace-ID  header    string                    true  "Workspace id"
// @Param        body            body      domain.NamedEntryRequest  true  "Interest"
// @Success      201  {object}  response.Response{data=domain.CVDocument}
// @Router       /workspace/interests/quick [post]
func (h *WorkspaceHandler) AddQuickInterest(c *gin.Context) {
	h.addNamed(c, domain.SectionInterests, "Interest added")
}

func (h *WorkspaceHandler) addNamed(c *gin.Context, section domain.SectionName, message string) {
	var req domain.NamedEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("Name is required"))
		return
	}
	doc, err := h.workspaceUC.AddEntry(c.Request.Context(), middleware.WorkspaceID(c), section, domain.NewEntryInput{Name: req.Name})
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, message, doc)
}
