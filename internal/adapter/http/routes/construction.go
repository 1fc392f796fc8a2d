package routes

import (
	"buildsite/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathProjects         = "/projects"
	PathMilestones       = "/milestones"
	PathBOQItems         = "/boq-items"
	PathExpenses         = "/expenses"
	PathPaymentSchedules = "/payment-schedules"
	PathPayments         = "/payments"
)

func addConstructionRoutes(
	rg *gin.RouterGroup,
	projectHandler *handlers.ProjectHandler,
	milestoneHandler *handlers.MilestoneHandler,
	budgetHandler *handlers.BudgetHandler,
	expenseHandler *handlers.ExpenseHandler,
	paymentHandler *handlers.PaymentHandler,
) {
	projects := rg.Group(PathProjects)
	{
		projects.POST("", projectHandler.CreateProject)
		projects.GET("/:project_id", projectHandler.GetProject)
		projects.PATCH("/:project_id/archive", projectHandler.ArchiveProject)
		projects.GET("/:project_id/milestones", milestoneHandler.ListMilestonesByProject)
	}

	milestones := rg.Group(PathMilestones)
	{
		milestones.POST("", milestoneHandler.CreateMilestone)
		milestones.GET("/:milestone_id", milestoneHandler.GetMilestone)
		milestones.PATCH("/:milestone_id/status", milestoneHandler.TransitionMilestone)
		milestones.GET("/:milestone_id/boq-items", budgetHandler.ListBOQItemsByMilestone)
		milestones.GET("/:milestone_id/budget-distribution", budgetHandler.GetBudgetDistribution)
		milestones.GET("/:milestone_id/expenses", expenseHandler.ListExpensesByMilestone)
		milestones.GET("/:milestone_id/expenses/totals", expenseHandler.GetExpenseTotals)
		milestones.GET("/:milestone_id/payment-schedules", paymentHandler.ListScheduleByMilestone)
	}

	boqItems := rg.Group(PathBOQItems)
	{
		boqItems.POST("", budgetHandler.CreateBOQItem)
		boqItems.GET("/:item_id", budgetHandler.GetBOQItem)
		boqItems.PUT("/:item_id", budgetHandler.UpdateBOQItem)
	}

	expenses := rg.Group(PathExpenses)
	{
		expenses.POST("", expenseHandler.SubmitExpense)
		expenses.PATCH("/:expense_id/approve/engineer", expenseHandler.ApproveByEngineer)
		expenses.PATCH("/:expense_id/approve/finance", expenseHandler.ApproveByFinance)
		expenses.PATCH("/:expense_id/reject", expenseHandler.RejectExpense)
	}

	schedules := rg.Group(PathPaymentSchedules)
	{
		schedules.POST("", paymentHandler.CreateScheduleEntry)
		schedules.GET("/:entry_id", paymentHandler.GetScheduleEntry)
		schedules.GET("/:entry_id/payments", paymentHandler.ListPaymentsByEntry)
		// Multipart: cash settlements carry proof_photo and signature files.
		schedules.POST("/:entry_id/payments", paymentHandler.RecordPayment)
	}

	payments := rg.Group(PathPayments)
	{
		// Provider webhook confirmation for asynchronous checkouts.
		payments.POST("/gateway/confirm", paymentHandler.ConfirmGatewayPayment)
	}
}
