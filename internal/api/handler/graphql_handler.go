package handler

import (
	"net/http"
	"time"

	"github.com/graphql-go/graphql"
	"github.com/labstack/echo/v4"

	"github.com/anylist/anylist-api/internal/api/metrics"
)

// GraphQLHandler executes GraphQL documents posted to the single /graphql
// endpoint. Auth never happens here: the bearer middleware has already put
// the raw token into the request context and each resolver runs its own
// identity check.
type GraphQLHandler struct {
	schema graphql.Schema
}

func NewGraphQLHandler(schema graphql.Schema) *GraphQLHandler {
	return &GraphQLHandler{schema: schema}
}

type graphqlRequest struct {
	Query         string                 `json:"query"`
	OperationName string                 `json:"operationName"`
	Variables     map[string]interface{} `json:"variables"`
}

// Execute handles POST /graphql. Failed operations still answer 200: the
// error kind travels in the GraphQL errors payload, not the HTTP status.
func (h *GraphQLHandler) Execute(c echo.Context) error {
	var req graphqlRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if req.Query == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "query is required")
	}

	start := time.Now()
	result := graphql.Do(graphql.Params{
		Schema:         h.schema,
		RequestString:  req.Query,
		OperationName:  req.OperationName,
		VariableValues: req.Variables,
		Context:        c.Request().Context(),
	})
	metrics.GraphQLRequestDuration.Observe(time.Since(start).Seconds())

	status := "ok"
	if len(result.Errors) > 0 {
		status = "error"
	}
	metrics.GraphQLRequestsTotal.WithLabelValues(status).Inc()

	return c.JSON(http.StatusOK, result)
}
