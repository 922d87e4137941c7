package handler

import (
	"errors"
	"net/http"

	"society-manager/internal/service"
	"society-manager/internal/util"

	"github.com/gin-gonic/gin"
)

// ChangePasswordReq carries the change-password request.
type ChangePasswordReq struct {
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,min=6,max=64"`
}

// ChangePassword swaps the admin password after proving the current one.
func ChangePassword(cred *service.Credential) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ChangePasswordReq
		if err := c.ShouldBindJSON(&req); err != nil {
			util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid parameters")
			return
		}

		err := cred.ChangePassword(req.OldPassword, req.NewPassword)
		if errors.Is(err, service.ErrWrongCurrentPassword) {
			util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "current password is wrong")
			return
		}
		if err != nil {
			util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "update password failed")
			return
		}

		util.Success(c, util.Response{
			"message": "password changed, please log in again with the new password",
		})
	}
}
