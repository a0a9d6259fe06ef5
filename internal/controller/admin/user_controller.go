package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/htloc/toeic-practice-api/internal/controller"
	"github.com/htloc/toeic-practice-api/internal/service"
)

type UserController struct {
	userService service.UserService
}

func NewUserController(userService service.UserService) *UserController {
	return &UserController{userService: userService}
}

// GetAllUsers godoc
// @Summary (Admin) List users
// @Tags Admin - Users
// @Produce json
// @Success 200 {array} dto.UserResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /admin/users [get]
func (c *UserController) GetAllUsers(ctx *gin.Context) {
	users, err := c.userService.GetAllUsers()
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, users)
}

// GetUser godoc
// @Summary (Admin) Get a user
// @Tags Admin - Users
// @Produce json
// @Param user_id path int true "User ID"
// @Success 200 {object} dto.UserResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /admin/users/{user_id} [get]
func (c *UserController) GetUser(ctx *gin.Context) {
	id, ok := pathID(ctx, "user_id")
	if !ok {
		return
	}
	user, err := c.userService.GetUser(id)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, user)
}
