package controllers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"hotel-cancellation/ml"
	"hotel-cancellation/models"
	"hotel-cancellation/services"
	"hotel-cancellation/utils"

	"github.com/gin-gonic/gin"
)

const dateLayout = "2006-01-02"

// BookingPayload is the submitted booking, bound from the HTML form or from JSON.
// Bounds mirror the form controls; categorical labels are passed through as typed.
type BookingPayload struct {
	Adults          int     `form:"adults" json:"adults" binding:"min=1,max=5"`
	Children        int     `form:"children" json:"children" binding:"min=0,max=5"`
	WeekendNights   int     `form:"weekend_nights" json:"weekend_nights" binding:"min=0,max=5"`
	WeekNights      int     `form:"week_nights" json:"week_nights" binding:"min=0,max=10"`
	MealPlan        string  `form:"meal_plan" json:"meal_plan" binding:"required"`
	CarParking      int     `form:"car_parking" json:"car_parking" binding:"oneof=0 1"`
	RoomType        string  `form:"room_type" json:"room_type" binding:"required"`
	LeadTimeDays    int     `form:"lead_time_days" json:"lead_time_days" binding:"min=0,max=500"`
	MarketSegment   string  `form:"market_segment" json:"market_segment" binding:"required"`
	RepeatedGuest   int     `form:"repeated_guest" json:"repeated_guest" binding:"oneof=0 1"`
	AvgPrice        float64 `form:"avg_price" json:"avg_price" binding:"min=0"`
	SpecialRequests int     `form:"special_requests" json:"special_requests" binding:"min=0,max=5"`
	ReservationDate string  `form:"reservation_date" json:"reservation_date" binding:"required,datetime=2006-01-02"`
}

func (p BookingPayload) toInput() (models.BookingInput, error) {
	d, err := time.Parse(dateLayout, p.ReservationDate)
	if err != nil {
		return models.BookingInput{}, fmt.Errorf("invalid reservation_date: %w", err)
	}
	return models.BookingInput{
		Adults:          p.Adults,
		Children:        p.Children,
		WeekendNights:   p.WeekendNights,
		WeekNights:      p.WeekNights,
		MealPlan:        p.MealPlan,
		CarParking:      p.CarParking,
		RoomType:        p.RoomType,
		LeadTimeDays:    p.LeadTimeDays,
		MarketSegment:   p.MarketSegment,
		RepeatedGuest:   p.RepeatedGuest,
		AvgPrice:        p.AvgPrice,
		SpecialRequests: p.SpecialRequests,
		ReservationDate: d,
	}, nil
}

func payloadFromInput(in models.BookingInput) BookingPayload {
	return BookingPayload{
		Adults:          in.Adults,
		Children:        in.Children,
		WeekendNights:   in.WeekendNights,
		WeekNights:      in.WeekNights,
		MealPlan:        in.MealPlan,
		CarParking:      in.CarParking,
		RoomType:        in.RoomType,
		LeadTimeDays:    in.LeadTimeDays,
		MarketSegment:   in.MarketSegment,
		RepeatedGuest:   in.RepeatedGuest,
		AvgPrice:        in.AvgPrice,
		SpecialRequests: in.SpecialRequests,
		ReservationDate: in.ReservationDate.Format(dateLayout),
	}
}

type pageData struct {
	Form           BookingPayload
	Result         *models.ResultView
	Error          string
	SchemaVersion  string
	MealPlans      []string
	RoomTypes      []string
	MarketSegments []string
}

// PredictResponse is the JSON shape of one prediction.
type PredictResponse struct {
	models.PredictionResult
	ProbabilityOfCancelling float64 `json:"probability_of_cancelling"`
	Status                  string  `json:"status"`
	Recommendation          string  `json:"recommendation"`
	SchemaVersion           string  `json:"schema_version"`
}

type PredictionController struct {
	PredictionSvc *services.PredictionService
	// Now is the clock used for the form's default date.
	Now func() time.Time
}

func NewPredictionController(svc *services.PredictionService) *PredictionController {
	return &PredictionController{PredictionSvc: svc, Now: time.Now}
}

func (ctrl *PredictionController) page(form BookingPayload) pageData {
	data := pageData{
		Form:           form,
		MealPlans:      models.MealPlans,
		RoomTypes:      models.RoomTypes,
		MarketSegments: models.MarketSegments,
	}
	if s := ctrl.PredictionSvc.Schema(); s != nil {
		data.SchemaVersion = s.Version()
	}
	return data
}

// renderUnavailable shows the blocking error page. No form is offered.
func (ctrl *PredictionController) renderUnavailable(c *gin.Context, err error) {
	c.HTML(http.StatusServiceUnavailable, "unavailable.html", pageData{Error: err.Error()})
}

// ShowForm (GET /)
func (ctrl *PredictionController) ShowForm(c *gin.Context) {
	if err := ctrl.PredictionSvc.Ready(); err != nil {
		ctrl.renderUnavailable(c, err)
		return
	}
	form := payloadFromInput(models.DefaultBookingInput(ctrl.Now()))
	c.HTML(http.StatusOK, "index.html", ctrl.page(form))
}

// SubmitForm (POST /predict)
func (ctrl *PredictionController) SubmitForm(c *gin.Context) {
	if err := ctrl.PredictionSvc.Ready(); err != nil {
		ctrl.renderUnavailable(c, err)
		return
	}

	var form BookingPayload
	if err := c.ShouldBind(&form); err != nil {
		data := ctrl.page(form)
		data.Error = "Invalid booking details: " + err.Error()
		c.HTML(http.StatusBadRequest, "index.html", data)
		return
	}

	result, code, err := ctrl.predict(form)
	data := ctrl.page(form)
	if err != nil {
		data.Error = err.Error()
		c.HTML(code, "index.html", data)
		return
	}
	view := services.RenderResult(result)
	data.Result = &view
	c.HTML(http.StatusOK, "index.html", data)
}

// Predict (POST /api/v1/predict)
func (ctrl *PredictionController) Predict(c *gin.Context) {
	if err := ctrl.PredictionSvc.Ready(); err != nil {
		utils.JSONError(c, http.StatusServiceUnavailable, err.Error())
		return
	}

	var payload BookingPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid booking payload: "+err.Error())
		return
	}

	result, code, err := ctrl.predict(payload)
	if err != nil {
		utils.JSONError(c, code, err.Error())
		return
	}

	view := services.RenderResult(result)
	utils.JSONSuccess(c, http.StatusOK, PredictResponse{
		PredictionResult:        result,
		ProbabilityOfCancelling: result.ProbabilityOfCancelling(),
		Status:                  view.Status,
		Recommendation:          view.Recommendation,
		SchemaVersion:           ctrl.PredictionSvc.Schema().Version(),
	})
}

// Schema (GET /api/v1/schema)
func (ctrl *PredictionController) Schema(c *gin.Context) {
	s := ctrl.PredictionSvc.Schema()
	if s == nil {
		utils.JSONError(c, http.StatusServiceUnavailable, services.ErrArtifactsUnavailable.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"version": s.Version(), "columns": s.Columns()})
}

// Ready (GET /ready)
func (ctrl *PredictionController) Ready(c *gin.Context) {
	if err := ctrl.PredictionSvc.Ready(); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}

func (ctrl *PredictionController) predict(p BookingPayload) (models.PredictionResult, int, error) {
	in, err := p.toInput()
	if err != nil {
		return models.PredictionResult{}, http.StatusBadRequest, err
	}

	result, err := ctrl.PredictionSvc.Predict(in)
	if err != nil {
		if errors.Is(err, services.ErrArtifactsUnavailable) {
			return models.PredictionResult{}, http.StatusServiceUnavailable, err
		}
		if errors.Is(err, ml.ErrShapeMismatch) {
			log.Printf("❌ feature alignment defect: %v", err)
		} else {
			log.Printf("❌ prediction failed: %v", err)
		}
		return models.PredictionResult{}, http.StatusInternalServerError, fmt.Errorf("prediction failed: %w", err)
	}
	return result, http.StatusOK, nil
}
