// Package graph defines the read-only GraphQL view of the catalog.
package graph

import (
	"github.com/graphql-go/graphql"

	"github.com/shashiranjanraj/cartinhas/app/models"
	"github.com/shashiranjanraj/cartinhas/app/services"
	"github.com/shashiranjanraj/cartinhas/pkg/collection"
	gql "github.com/shashiranjanraj/cartinhas/pkg/graphql"
)

var cardType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Card",
	Fields: graphql.Fields{
		"id":          &graphql.Field{Type: graphql.Int},
		"name":        &graphql.Field{Type: graphql.String},
		"description": &graphql.Field{Type: graphql.String},
		"price":       &graphql.Field{Type: graphql.Float},
		"image":       &graphql.Field{Type: graphql.String},
		"stock":       &graphql.Field{Type: graphql.Int},
	},
})

// NewSchema builds the catalog query schema.
func NewSchema(catalog *services.CatalogService) (graphql.Schema, error) {
	query := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"cards": &graphql.Field{
				Type: graphql.NewList(cardType),
				Resolve: func(p graphql.ResolveParams) (any, error) {
					cards, err := catalog.List(p.Context)
					if err != nil {
						return nil, err
					}
					return collection.Map(cards, cardView), nil
				},
			},
			"card": &graphql.Field{
				Type: cardType,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
				},
				Resolve: func(p graphql.ResolveParams) (any, error) {
					id, _ := p.Args["id"].(int)
					card, err := catalog.Find(uint(id))
					if err != nil {
						return nil, err
					}
					return cardView(card), nil
				},
			},
		},
	})

	return gql.NewSchema(query)
}

func cardView(card models.Card) map[string]any {
	return map[string]any{
		"id":          int(card.ID),
		"name":        card.Name,
		"description": card.Description,
		"price":       card.Price,
		"image":       card.Image,
		"stock":       card.Stock,
	}
}
