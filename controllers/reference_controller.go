package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"boardgames-api/models"
	"boardgames-api/utils"
)

type CategoryStore interface {
	List() ([]models.Category, error)
}

type UserStore interface {
	List() ([]models.User, error)
}

type CategoryController struct {
	store CategoryStore
}

func NewCategoryController(store CategoryStore) *CategoryController {
	return &CategoryController{store: store}
}

func (cc *CategoryController) GetCategories(c *gin.Context) {
	categories, err := cc.store.List()
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

type UserController struct {
	store UserStore
}

func NewUserController(store UserStore) *UserController {
	return &UserController{store: store}
}

func (uc *UserController) GetUsers(c *gin.Context) {
	users, err := uc.store.List()
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"users": users})
}

// RouteNotFound answers anything outside the route table.
func RouteNotFound(c *gin.Context) {
	utils.SendError(c, models.ErrRouteNotFound.Status, models.ErrRouteNotFound.Msg)
}

// HealthCheck reports liveness.
func HealthCheck(c *gin.Context) {
	utils.SendMessage(c, http.StatusOK, "server up")
}
