package rest

const (
	// api
	RouteApiV1 = "/api/v1"

	// auth
	RouteAuth     = RouteApiV1 + "/auth"
	RouteLogin    = RouteAuth + "/login"
	RouteRegister = RouteAuth + "/register"

	RouteAgents      = RouteApiV1 + "/agents"
	RouteAgent       = RouteAgents + "/:agent_id"
	RouteAgentAvatar = RouteAgent + "/avatar"

	RouteListings = RouteApiV1 + "/listings"
	RouteListing  = RouteListings + "/:listing_id"

	// ops
	RouteHealth  = RouteApiV1 + "/healthz"
	RouteMetrics = RouteApiV1 + "/metrics"
)
