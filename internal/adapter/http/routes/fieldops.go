package routes

import (
	"fieldops/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathJobs        = "/jobs"
	PathVisits      = "/visits"
	PathDispatch    = "/dispatch"
	PathTechnicians = "/technicians"
	PathVehicles    = "/vehicles"
	PathConsents    = "/consents"
)

func addJobRoutes(rg *gin.RouterGroup, jobHandler *handlers.JobHandler, visitHandler *handlers.VisitHandler) {
	jobs := rg.Group(PathJobs)
	{
		jobs.POST("", jobHandler.CreateJob)
		jobs.GET("", jobHandler.ListJobs)
		jobs.GET("/:job_id", jobHandler.GetJob)
		jobs.PATCH("/:job_id", jobHandler.UpdateJob)
		jobs.PATCH("/:job_id/pricing-mode", jobHandler.ChangePricingMode)
		jobs.GET("/:job_id/pricing", jobHandler.GetPricing)

		jobs.POST("/:job_id/visits", visitHandler.CreateVisit)
		jobs.GET("/:job_id/visits", visitHandler.ListVisitsByJob)
	}
}

func addVisitRoutes(rg *gin.RouterGroup, visitHandler *handlers.VisitHandler) {
	visits := rg.Group(PathVisits)
	{
		visits.GET("/:visit_id", visitHandler.GetVisit)
		visits.PATCH("/:visit_id/assign", visitHandler.AssignVisit)
		visits.PATCH("/:visit_id/schedule", visitHandler.ScheduleVisit)
		visits.PATCH("/:visit_id/start", visitHandler.StartVisit)
		visits.PATCH("/:visit_id/complete", visitHandler.CompleteVisit)
		visits.PATCH("/:visit_id/cancel", visitHandler.CancelVisit)
		visits.POST("/:visit_id/propose-price", visitHandler.ProposePrice)
		visits.POST("/:visit_id/approve-price", visitHandler.ApproveProposedPrice)
		visits.POST("/:visit_id/deposit", visitHandler.PayDeposit)
	}
}

func addDispatchRoutes(rg *gin.RouterGroup, dispatchHandler *handlers.DispatchHandler, visitHandler *handlers.VisitHandler) {
	dispatch := rg.Group(PathDispatch)
	{
		dispatch.GET("", dispatchHandler.GetBoard)
		// Reassignment from the board reuses the visit assign transition.
		dispatch.PATCH("/visits/:visit_id/assign", visitHandler.AssignVisit)
	}
}

func addTeamRoutes(rg *gin.RouterGroup, technicianHandler *handlers.TechnicianHandler, vehicleHandler *handlers.VehicleHandler) {
	technicians := rg.Group(PathTechnicians)
	{
		technicians.POST("", technicianHandler.CreateTechnician)
		technicians.GET("", technicianHandler.ListTechnicians)
		technicians.GET("/:technician_id", technicianHandler.GetTechnician)
		technicians.PATCH("/:technician_id", technicianHandler.UpdateTechnician)
		technicians.DELETE("/:technician_id", technicianHandler.DeactivateTechnician)
	}

	vehicles := rg.Group(PathVehicles)
	{
		vehicles.POST("", vehicleHandler.CreateVehicle)
		vehicles.GET("", vehicleHandler.ListVehicles)
		vehicles.GET("/:vehicle_id", vehicleHandler.GetVehicle)
		vehicles.PATCH("/:vehicle_id", vehicleHandler.UpdateVehicle)
		vehicles.PATCH("/:vehicle_id/status", vehicleHandler.ChangeVehicleStatus)
		vehicles.PATCH("/:vehicle_id/technician", vehicleHandler.AssignVehicleTechnician)
	}
}

func addConsentRoutes(rg *gin.RouterGroup, consentHandler *handlers.ConsentHandler) {
	consents := rg.Group(PathConsents)
	{
		consents.POST("", consentHandler.RecordConsent)
		consents.GET("/:phone", consentHandler.GetConsentState)
		consents.GET("/:phone/history", consentHandler.GetConsentHistory)
	}
}
