package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bnyashwanth/event-ticketing-system/internal/helpers"
	"github.com/bnyashwanth/event-ticketing-system/internal/models"
	"github.com/bnyashwanth/event-ticketing-system/internal/services"
)

// SubmitRegistration is public: attendees do not need an account to register
// for an event.
func SubmitRegistration(rs *services.RegistrationService) gin.HandlerFunc {
	return func(c *gin.Context) {
		eventID, ok := objectIDParam(c, "eventId")
		if !ok {
			return
		}

		var reqBody struct {
			UserName  string `json:"user_name" binding:"required"`
			UserEmail string `json:"user_email" binding:"required"`
		}
		if err := c.ShouldBindJSON(&reqBody); err != nil {
			c.JSON(http.StatusBadRequest, models.ValidationErrorResponse("invalid request body", err.Error()))
			return
		}

		registration, err := rs.SubmitRegistration(c.Request.Context(), eventID, reqBody.UserName, reqBody.UserEmail)
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusCreated, models.SuccessResponse(registration, "Registration submitted successfully"))
	}
}

func ListEventRegistrations(rs *services.RegistrationService) gin.HandlerFunc {
	return func(c *gin.Context) {
		eventID, ok := objectIDParam(c, "eventId")
		if !ok {
			return
		}

		requesterID, ok := organizerFromContext(c)
		if !ok {
			return
		}

		registrations, err := rs.ListEventRegistrations(c.Request.Context(), eventID, requesterID)
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse(registrations, ""))
	}
}

func UpdateRegistrationStatus(rs *services.RegistrationService) gin.HandlerFunc {
	return func(c *gin.Context) {
		registrationID, ok := objectIDParam(c, "id")
		if !ok {
			return
		}

		requesterID, ok := organizerFromContext(c)
		if !ok {
			return
		}

		var reqBody struct {
			Status models.RegistrationStatus `json:"status" binding:"required"`
		}
		if err := c.ShouldBindJSON(&reqBody); err != nil {
			c.JSON(http.StatusBadRequest, models.ValidationErrorResponse("invalid request body", err.Error()))
			return
		}

		registration, err := rs.SetRegistrationStatus(c.Request.Context(), registrationID, reqBody.Status, requesterID)
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse(registration, "Registration status updated"))
	}
}

// GetTicket is public: the ticket identifier itself is the bearer credential.
func GetTicket(rs *services.RegistrationService) gin.HandlerFunc {
	return func(c *gin.Context) {
		ticketID := helpers.StringTrim(c.Param("ticketId"))
		if ticketID == "" {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("ticketId is required"))
			return
		}

		ticket, err := rs.GetTicket(c.Request.Context(), ticketID)
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse(ticket, ""))
	}
}
