package echoapi

import (
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/mwenda/classtrack/core/assignment"
)

type assignmentAPI struct {
	svc      *assignment.Service
	validate *validator.Validate
}

type CreateAssignmentResponse struct {
	Message      string `json:"message"`
	AssignmentID int    `json:"assignment_id"`
}

type SubmitResponse struct {
	Message      string `json:"message"`
	SubmissionID int    `json:"submission_id"`
}

func (api *assignmentAPI) create(ctx echo.Context) error {
	teacherID, err := getContextUserID(ctx)
	if err != nil {
		return errors.Wrap(err, "getting context user id")
	}

	var data assignment.NewAssignment
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewAssignment")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	asg, err := api.svc.Create(ctx.Request().Context(), teacherID, data)
	if err != nil {
		return errors.Wrap(err, "creating assignment")
	}

	return ctx.JSON(http.StatusCreated, CreateAssignmentResponse{
		Message:      "Assignment created",
		AssignmentID: asg.ID,
	})
}

func (api *assignmentAPI) list(ctx echo.Context) error {
	asgs, err := api.svc.QueryAll(ctx.Request().Context())
	if err != nil {
		return errors.Wrap(err, "querying assignments")
	}
	if asgs == nil {
		asgs = []assignment.Assignment{}
	}
	return ctx.JSON(http.StatusOK, asgs)
}

func (api *assignmentAPI) submit(ctx echo.Context) error {
	studentID, err := getContextUserID(ctx)
	if err != nil {
		return errors.Wrap(err, "getting context user id")
	}
	assignmentID, err := pathID(ctx)
	if err != nil {
		return err
	}

	var data assignment.NewSubmission
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewSubmission")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	sub, err := api.svc.Submit(ctx.Request().Context(), studentID, assignmentID, data)
	if err != nil {
		if errors.Cause(err) == assignment.ErrNotFound {
			return errHTTPNotFound
		}
		return errors.Wrap(err, "creating submission")
	}

	return ctx.JSON(http.StatusCreated, SubmitResponse{
		Message:      "Submission successful",
		SubmissionID: sub.ID,
	})
}

func (api *assignmentAPI) listSubmissions(ctx echo.Context) error {
	assignmentID, err := pathID(ctx)
	if err != nil {
		return err
	}

	subs, err := api.svc.ListSubmissions(ctx.Request().Context(), assignmentID)
	if err != nil {
		if errors.Cause(err) == assignment.ErrNotFound {
			return errHTTPNotFound
		}
		return errors.Wrap(err, "listing submissions")
	}
	if subs == nil {
		subs = []assignment.Submission{}
	}
	return ctx.JSON(http.StatusOK, subs)
}

func pathID(ctx echo.Context) (int, error) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid assignment id")
	}
	return id, nil
}
