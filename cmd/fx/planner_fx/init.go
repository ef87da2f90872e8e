package planner_fx

import (
	"go.uber.org/fx"

	"wander/internal/api/controllers"
	"wander/internal/repositories"
	"wander/internal/services"
)

var Module = fx.Provide(
	ProvidePlannerService,
	ProvidePlannerController)

func ProvidePlannerService(
	catalog repositories.CatalogRepository,
	advisor services.AdvisorServiceInterface,
) services.PlannerServiceInterface {
	return services.NewPlannerService(catalog, advisor)
}

func ProvidePlannerController(plannerService services.PlannerServiceInterface) *controllers.PlannerController {
	return controllers.NewPlannerController(plannerService)
}
