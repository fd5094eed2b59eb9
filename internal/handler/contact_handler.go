package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"contacts/internal/errors"
	"contacts/internal/service"
)

// ContactHandler handles contact endpoints. Errors are returned to echo
// and rendered by the router's error handler.
type ContactHandler struct {
	contactService service.ContactService
}

// NewContactHandler creates a new contact handler.
func NewContactHandler(contactService service.ContactService) *ContactHandler {
	return &ContactHandler{contactService: contactService}
}

// ListContacts godoc
// @Summary List contacts
// @Tags contacts
// @Produce json
// @Success 200 {array} model.Contact
// @Failure 500 {object} errors.Problem
// @Router /contacts [get]
func (h *ContactHandler) ListContacts(c echo.Context) error {
	contacts, err := h.contactService.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, contacts)
}

// GetContact godoc
// @Summary Get contact by id
// @Tags contacts
// @Produce json
// @Param id path int true "Contact ID"
// @Success 200 {object} model.Contact
// @Failure 400 {object} errors.Problem
// @Failure 404 {object} errors.Problem
// @Router /contacts/{id} [get]
func (h *ContactHandler) GetContact(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	contact, err := h.contactService.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, contact)
}

// CreateContact godoc
// @Summary Create contact
// @Tags contacts
// @Accept json
// @Produce json
// @Param contact body service.CreateContactRequest true "Contact payload"
// @Success 201 {object} model.Contact
// @Header 201 {string} Location "URL of the created contact"
// @Failure 400 {object} errors.Problem
// @Failure 409 {object} errors.Problem
// @Router /contacts [post]
func (h *ContactHandler) CreateContact(c echo.Context) error {
	var req service.CreateContactRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	contact, err := h.contactService.Create(c.Request().Context(), req)
	if err != nil {
		return err
	}

	c.Response().Header().Set(echo.HeaderLocation, fmt.Sprintf("/api/contacts/%d", contact.ID))
	return c.JSON(http.StatusCreated, contact)
}

// UpdateContact godoc
// @Summary Replace contact
// @Tags contacts
// @Accept json
// @Produce json
// @Param id path int true "Contact ID"
// @Param contact body service.UpdateContactRequest true "Contact payload"
// @Success 204
// @Failure 400 {object} errors.Problem
// @Failure 404 {object} errors.Problem
// @Failure 409 {object} errors.Problem
// @Router /contacts/{id} [put]
func (h *ContactHandler) UpdateContact(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	var req service.UpdateContactRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if _, err := h.contactService.Update(c.Request().Context(), id, req); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// DeleteContact godoc
// @Summary Delete contact
// @Tags contacts
// @Param id path int true "Contact ID"
// @Success 204
// @Failure 400 {object} errors.Problem
// @Failure 404 {object} errors.Problem
// @Router /contacts/{id} [delete]
func (h *ContactHandler) DeleteContact(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	if err := h.contactService.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func parseID(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		return 0, errors.ErrInvalidID
	}
	return uint(id), nil
}
