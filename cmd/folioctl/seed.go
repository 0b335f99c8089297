package main

import (
	"context"
	"fmt"
	"time"

	aboutstore "github.com/rohithbabu/foliohub/internal/app/store/about"
	"github.com/rohithbabu/foliohub/internal/app/store/debuglogs"
	"github.com/rohithbabu/foliohub/internal/app/store/oauthstate"
	sociallinkstore "github.com/rohithbabu/foliohub/internal/app/store/sociallinks"
	"github.com/rohithbabu/foliohub/internal/domain/models"
	"github.com/spf13/cobra"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// newSeedCmd prepares a fresh database: creates indexes and, when the
// about collection is empty, inserts a starter document so the site has
// something to render.
func newSeedCmd() *cobra.Command {
	var (
		uri      string
		database string
		headline string
		bio      string
		email    string
		location string
	)

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Create indexes and a starter about document",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
			defer cancel()

			client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
			if err != nil {
				return fmt.Errorf("connect to MongoDB: %w", err)
			}
			defer func() { _ = client.Disconnect(ctx) }()

			if err := client.Ping(ctx, readpref.Primary()); err != nil {
				return fmt.Errorf("ping MongoDB: %w", err)
			}
			db := client.Database(database)

			if err := sociallinkstore.New(db, nil).EnsureIndexes(ctx); err != nil {
				return fmt.Errorf("ensure social link indexes: %w", err)
			}
			if err := debuglogs.New(db).EnsureIndexes(ctx); err != nil {
				return fmt.Errorf("ensure debug log indexes: %w", err)
			}
			if err := oauthstate.New(db).EnsureIndexes(ctx); err != nil {
				return fmt.Errorf("ensure oauth state indexes: %w", err)
			}
			fmt.Println("indexes ensured")

			about := aboutstore.New(db, nil)
			existing, err := about.Get(ctx)
			if err != nil {
				return err
			}
			if existing != nil {
				fmt.Println("about document already present, skipping")
				return nil
			}

			id, err := about.Add(ctx, models.About{
				Headline: headline,
				Bio:      bio,
				Email:    email,
				Location: location,
			})
			if err != nil {
				return err
			}
			fmt.Println("about document created:", id.Hex())
			return nil
		},
	}

	cmd.Flags().StringVar(&uri, "uri", "mongodb://localhost:27017", "MongoDB connection URI")
	cmd.Flags().StringVar(&database, "db", "folio_hub", "database name")
	cmd.Flags().StringVar(&headline, "headline", "Hello, I build things", "starter headline")
	cmd.Flags().StringVar(&bio, "bio", "This site is under construction.", "starter bio")
	cmd.Flags().StringVar(&email, "email", "owner@example.com", "contact email")
	cmd.Flags().StringVar(&location, "location", "Somewhere on Earth", "location")
	return cmd
}
