// Package api is the wire contract shared by the API server, the typed
// client and the web app: route paths plus request and response bodies.
package api

import (
	"strconv"
	"strings"
)

const Prefix = "/api/v1"

// Route patterns in chi syntax. Client code fills placeholders with Path.
const (
	RouteHealth = "/health"

	RouteAuthRegister = Prefix + "/auth/register"
	RouteAuthLogin    = Prefix + "/auth/login"
	RouteAuthVerify   = Prefix + "/auth/verify"

	RouteUser      = Prefix + "/users/{id}"
	RouteUserTheme = Prefix + "/users/{id}/theme"

	RouteCattle        = Prefix + "/cattle"
	RouteCattleItem    = Prefix + "/cattle/{id}"
	RouteCattleStatus  = Prefix + "/cattle/{id}/status"
	RouteCattleHistory = Prefix + "/cattle/{id}/history"

	RouteEvents    = Prefix + "/events"
	RouteEventItem = Prefix + "/events/{id}"

	RouteBreedingKPI = Prefix + "/kpi/breeding"

	RouteShipments      = Prefix + "/shipments"
	RouteShipmentItem   = Prefix + "/shipments/{id}"
	RouteShipmentPlans  = Prefix + "/shipments/plans"
	RouteShipmentPlan   = Prefix + "/shipments/plans/{cattleId}"
	RoutePreRegister    = Prefix + "/pre-register"
	RouteAdminRegs      = Prefix + "/admin/registrations"
	RouteAdminRegStatus = Prefix + "/admin/registrations/{id}/status"
	RouteAdminEmailLogs = Prefix + "/admin/email-logs"
)

// Path substitutes {name} placeholders in a route pattern.
//
//	Path(RouteCattleStatus, "id", "42") == "/api/v1/cattle/42/status"
func Path(route string, kv ...string) string {
	for i := 0; i+1 < len(kv); i += 2 {
		route = strings.ReplaceAll(route, "{"+kv[i]+"}", kv[i+1])
	}
	return route
}

// ID renders a numeric path parameter.
func ID(id int64) string {
	return strconv.FormatInt(id, 10)
}
