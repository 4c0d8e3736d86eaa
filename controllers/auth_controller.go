package controllers

import (
	"net/http"
	"strings"

	"github.com/arminsheibak/Online-Food-API/configs"
	"github.com/arminsheibak/Online-Food-API/entity"
	"github.com/arminsheibak/Online-Food-API/pkg/mailer"
	"github.com/arminsheibak/Online-Food-API/pkg/resp"
	"github.com/arminsheibak/Online-Food-API/repository"
	"github.com/arminsheibak/Online-Food-API/utils"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

type RegisterRequest struct {
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=6"`
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
}
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AuthController struct {
	Repo   *repository.UserRepository
	Mailer mailer.Mailer
	Cfg    *configs.Config
}

func NewAuthController(repo *repository.UserRepository, m mailer.Mailer, cfg *configs.Config) *AuthController {
	return &AuthController{Repo: repo, Mailer: m, Cfg: cfg}
}

// POST /auth/register
func (a *AuthController) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	email := strings.ToLower(req.Email)
	if _, err := a.Repo.GetByEmail(email); err == nil {
		resp.BadRequest(c, "email already registered")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	user := entity.User{Email: email, Password: string(hashed)}
	profile := entity.Profile{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Role:      entity.RoleCustomer,
	}
	if err := a.Repo.CreateWithProfile(&user, &profile); err != nil {
		resp.ServerError(c, err)
		return
	}

	// Post-creation hook; failures must not fail the registration.
	_ = a.Mailer.SendWelcome(user.Email)

	resp.Created(c, gin.H{
		"id": user.ID, "email": user.Email,
		"firstName": profile.FirstName, "lastName": profile.LastName,
	})
}

// POST /auth/login
func (a *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	user, err := a.Repo.GetByEmail(strings.ToLower(req.Email))
	if err != nil {
		resp.Unauthorized(c, "invalid credentials")
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		resp.Unauthorized(c, "invalid credentials")
		return
	}

	role, err := a.Repo.RoleOf(user.ID)
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	token, err := utils.GenerateToken(user.ID, role, a.Cfg.JWTSecret, a.Cfg.JWTTTL)
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"ok":    true,
		"token": token,
		"user":  gin.H{"id": user.ID, "email": user.Email, "role": role},
	})
}

// GET /auth/me
func (a *AuthController) Me(c *gin.Context) {
	user, err := a.Repo.Get(utils.CurrentUserID(c))
	if err != nil {
		resp.BadRequest(c, "user not found")
		return
	}
	resp.OK(c, gin.H{"id": user.ID, "email": user.Email, "role": utils.CurrentRole(c)})
}
