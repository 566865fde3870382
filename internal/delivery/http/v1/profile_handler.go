package v1

import (
	"net/http"

	"github.com/adamcc31/devconnect-api/internal/delivery/http/response"
	"github.com/adamcc31/devconnect-api/internal/domain"
	"github.com/adamcc31/devconnect-api/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	profileUC domain.ProfileUsecase
	accountUC domain.AccountUsecase
	githubUC  domain.GithubUsecase
}

// NewProfileHandler registers the profile aggregate routes
func NewProfileHandler(
	public *gin.RouterGroup,
	protected *gin.RouterGroup,
	profileUC domain.ProfileUsecase,
	accountUC domain.AccountUsecase,
	githubUC domain.GithubUsecase,
) {
	handler := &ProfileHandler{
		profileUC: profileUC,
		accountUC: accountUC,
		githubUC:  githubUC,
	}

	// Public routes
	public.GET("/profile", handler.GetAll)
	public.GET("/profile/user/:userId", handler.GetByUser)
	public.GET("/profile/github/:username", handler.GetGithubRepos)

	// Protected routes
	protected.GET("/profile/me", handler.GetOwn)
	protected.POST("/profile", handler.Upsert)
	protected.DELETE("/profile", handler.DeleteAccount)
	protected.PUT("/profile/experience", handler.AddExperience)
	protected.DELETE("/profile/experience/:expId", handler.RemoveExperience)
	protected.PUT("/profile/education", handler.AddEducation)
	protected.DELETE("/profile/education/:eduId", handler.RemoveEducation)
}

// GetOwn godoc
// @Summary      Get the caller's profile
// @Tags         profile
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /profile/me [get]
// @Security     BearerAuth
func (h *ProfileHandler) GetOwn(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	profile, err := h.profileUC.GetOwn(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Profile retrieved", profile)
}

// Upsert godoc
// @Summary      Create or update the caller's profile
// @Description  Replaces scalar, skills and social fields; nested lists are untouched
// @Tags         profile
// @Accept       json
// @Produce      json
// @Param        profile  body      domain.ProfileInput  true  "Profile fields"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /profile [post]
// @Security     BearerAuth
func (h *ProfileHandler) Upsert(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	var in domain.ProfileInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.Error(apperror.BadRequest("Invalid request body"))
		return
	}

	profile, err := h.profileUC.Upsert(c.Request.Context(), userID, &in)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Profile saved", profile)
}

// GetAll godoc
// @Summary      List all profiles
// @Tags         profile
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /profile [get]
func (h *ProfileHandler) GetAll(c *gin.Context) {
	profiles, err := h.profileUC.GetAll(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Profiles retrieved", profiles)
}

// GetByUser godoc
// @Summary      Get a profile by user id
// @Tags         profile
// @Produce      json
// @Param        userId  path  string  true  "User ID"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /profile/user/{userId} [get]
func (h *ProfileHandler) GetByUser(c *gin.Context) {
	profile, err := h.profileUC.GetByUser(c.Request.Context(), c.Param("userId"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Profile retrieved", profile)
}

// DeleteAccount godoc
// @Summary      Delete the caller's account
// @Description  Cascading removal of posts, profile and user. The caller must have confirmed beforehand.
// @Tags         profile
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Router       /profile [delete]
// @Security     BearerAuth
func (h *ProfileHandler) DeleteAccount(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	if err := h.accountUC.DeleteAccount(c.Request.Context(), userID); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "User and profile deleted", gin.H{"msg": "User and profile deleted"})
}

// AddExperience godoc
// @Summary      Add a work-experience entry
// @Tags         profile
// @Accept       json
// @Produce      json
// @Param        experience  body      domain.ExperienceInput  true  "Experience entry"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /profile/experience [put]
// @Security     BearerAuth
func (h *ProfileHandler) AddExperience(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	var in domain.ExperienceInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.Error(apperror.BadRequest("Invalid request body"))
		return
	}

	profile, err := h.profileUC.AddExperience(c.Request.Context(), userID, &in)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Experience added", profile)
}

// RemoveExperience godoc
// @Summary      Remove a work-experience entry by id
// @Tags         profile
// @Produce      json
// @Param        expId  path  string  true  "Experience entry ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /profile/experience/{expId} [delete]
// @Security     BearerAuth
func (h *ProfileHandler) RemoveExperience(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	profile, err := h.profileUC.RemoveExperience(c.Request.Context(), userID, c.Param("expId"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Experience removed", profile)
}

// AddEducation godoc
// @Summary      Add an education entry
// @Tags         profile
// @Accept       json
// @Produce      json
// @Param        education  body      domain.EducationInput  true  "Education entry"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /profile/education [put]
// @Security     BearerAuth
func (h *ProfileHandler) AddEducation(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	var in domain.EducationInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.Error(apperror.BadRequest("Invalid request body"))
		return
	}

	profile, err := h.profileUC.AddEducation(c.Request.Context(), userID, &in)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Education added", profile)
}

// RemoveEducation godoc
// @Summary      Remove an education entry by id
// @Tags         profile
// @Produce      json
// @Param        eduId  path  string  true  "Education entry ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /profile/education/{eduId} [delete]
// @Security     BearerAuth
func (h *ProfileHandler) RemoveEducation(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	profile, err := h.profileUC.RemoveEducation(c.Request.Context(), userID, c.Param("eduId"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Education removed", profile)
}

// GetGithubRepos godoc
// @Summary      List a user's latest public Github repositories
// @Tags         profile
// @Produce      json
// @Param        username  path  string  true  "Github username"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /profile/github/{username} [get]
func (h *ProfileHandler) GetGithubRepos(c *gin.Context) {
	repos, err := h.githubUC.GetUserRepos(c.Request.Context(), c.Param("username"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Github repositories", repos)
}
