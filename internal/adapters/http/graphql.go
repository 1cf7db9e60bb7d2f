package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/graphql-go/graphql"

	"github.com/samirrijal/dronegeo/internal/core/domain"
)

// buildSchema creates the GraphQL schema wired to the position service.
// Input coordinates are nullable so that validation, not the GraphQL type
// system, decides what a missing value means.
func buildSchema(deps *Dependencies) (graphql.Schema, error) {
	positionType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Position",
		Fields: graphql.Fields{
			"lng": &graphql.Field{Type: graphql.Float},
			"lat": &graphql.Field{Type: graphql.Float},
		},
	})

	positionInput := graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "PositionInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"lng": &graphql.InputObjectFieldConfig{Type: graphql.Float},
			"lat": &graphql.InputObjectFieldConfig{Type: graphql.Float},
		},
	})

	regionInput := graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "RegionInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"name":     &graphql.InputObjectFieldConfig{Type: graphql.String},
			"vertices": &graphql.InputObjectFieldConfig{Type: graphql.NewList(positionInput)},
		},
	})

	pairArgs := graphql.FieldConfigArgument{
		"position1": &graphql.ArgumentConfig{Type: positionInput},
		"position2": &graphql.ArgumentConfig{Type: positionInput},
	}

	queryType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"distance": &graphql.Field{
				Type:        graphql.Float,
				Description: "Euclidean distance in degrees between two positions",
				Args:        pairArgs,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					req := distanceArgs(p.Args)
					if err := deps.Positions.ValidateDistance(req); err != nil {
						return nil, err
					}
					return deps.Positions.CalculateDistance(req), nil
				},
			},
			"isCloseTo": &graphql.Field{
				Type:        graphql.Boolean,
				Description: "Whether two positions are closer than the close threshold",
				Args:        pairArgs,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					req := distanceArgs(p.Args)
					if err := deps.Positions.ValidateDistance(req); err != nil {
						return nil, err
					}
					return deps.Positions.IsCloseTo(req, deps.Positions.CloseThreshold()), nil
				},
			},
			"nextPosition": &graphql.Field{
				Type:        positionType,
				Description: "Position one step from start towards a compass angle",
				Args: graphql.FieldConfigArgument{
					"start": &graphql.ArgumentConfig{Type: positionInput},
					"angle": &graphql.ArgumentConfig{Type: graphql.Float},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					req := &domain.NextPositionRequest{
						Start: positionArg(p.Args["start"]),
						Angle: floatArg(p.Args["angle"]),
					}
					if err := deps.Positions.ValidateNextPosition(req); err != nil {
						return nil, err
					}
					return deps.Positions.CalculateNextPosition(req), nil
				},
			},
			"isInRegion": &graphql.Field{
				Type:        graphql.Boolean,
				Description: "Whether a position lies inside or on the border of a closed region",
				Args: graphql.FieldConfigArgument{
					"position": &graphql.ArgumentConfig{Type: positionInput},
					"region":   &graphql.ArgumentConfig{Type: regionInput},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					req := &domain.RegionRequest{
						Position: positionArg(p.Args["position"]),
						Region:   regionArg(p.Args["region"]),
					}
					if err := deps.Positions.ValidateRegion(req); err != nil {
						return nil, err
					}
					return deps.Positions.IsInRegion(p.Context, req), nil
				},
			},
		},
	})

	return graphql.NewSchema(graphql.SchemaConfig{
		Query: queryType,
	})
}

func distanceArgs(args map[string]interface{}) *domain.DistanceRequest {
	return &domain.DistanceRequest{
		Position1: positionArg(args["position1"]),
		Position2: positionArg(args["position2"]),
	}
}

func positionArg(v interface{}) *domain.PositionInput {
	m, ok := v.(map[string]interface{})
	if !ok {
		return nil
	}
	return &domain.PositionInput{Lng: floatArg(m["lng"]), Lat: floatArg(m["lat"])}
}

func regionArg(v interface{}) *domain.RegionInput {
	m, ok := v.(map[string]interface{})
	if !ok {
		return nil
	}
	region := &domain.RegionInput{}
	if name, ok := m["name"].(string); ok {
		region.Name = &name
	}
	if list, ok := m["vertices"].([]interface{}); ok {
		region.Vertices = make([]*domain.PositionInput, len(list))
		for i, item := range list {
			region.Vertices[i] = positionArg(item)
		}
	}
	return region
}

func floatArg(v interface{}) *float64 {
	switch n := v.(type) {
	case float64:
		return &n
	case int:
		f := float64(n)
		return &f
	}
	return nil
}

// GraphQLHandler serves the GraphQL endpoint.
func GraphQLHandler(deps *Dependencies) fiber.Handler {
	schema, err := buildSchema(deps)
	if err != nil {
		// This would be a programming error in the schema definition
		panic("graphql schema build: " + err.Error())
	}

	type gqlRequest struct {
		Query         string                 `json:"query"`
		OperationName string                 `json:"operationName"`
		Variables     map[string]interface{} `json:"variables"`
	}

	return func(c *fiber.Ctx) error {
		var req gqlRequest
		if err := c.BodyParser(&req); err != nil {
			return errBadRequest(c, "invalid request body")
		}

		result := graphql.Do(graphql.Params{
			Schema:         schema,
			RequestString:  req.Query,
			VariableValues: req.Variables,
			OperationName:  req.OperationName,
			Context:        c.UserContext(),
		})

		return c.JSON(result)
	}
}
