// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"

	"github.com/MKhiriev/go-recipe-box/models"
	sq "github.com/Masterminds/squirrel"
)

const (
	usersTable    = "users"
	recipesTable  = "recipes"
	reviewsTable  = "reviews"
	favsTable     = "favorites"
	contactsTable = "contact_messages"
)

// psql builds PostgreSQL flavoured statements with $n placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var (
	userColumns = []string{"id", "email", "password", "is_admin", "created_at"}

	recipeColumns = []string{
		"id", "title", "category", "image", "created_by", "description",
		"ingredients", "instructions", "favorite", "ratings", "created_at",
	}

	reviewColumns  = []string{"id", "recipe_id", "uid", "reviewer", "text", "rating", "created_at"}
	contactColumns = []string{"id", "name", "email", "message", "timestamp", "created_at"}
)

func returning(columns []string) string {
	return "RETURNING " + strings.Join(columns, ", ")
}

func qualified(table string, columns []string) []string {
	out := make([]string, len(columns))
	for i, c := range columns {
		out[i] = table + "." + c
	}
	return out
}

// ── users ─────────────────────────────────────────────────────────────────────

func buildInsertUserQuery(user models.User) (string, []any, error) {
	return psql.Insert(usersTable).
		Columns("email", "password", "is_admin").
		Values(user.Email, user.Password, user.IsAdmin).
		Suffix(returning(userColumns)).
		ToSql()
}

func buildSelectUserByEmailQuery(email string) (string, []any, error) {
	return psql.Select(userColumns...).
		From(usersTable).
		Where(sq.Eq{"email": email}).
		ToSql()
}

// ── recipes ───────────────────────────────────────────────────────────────────

// buildSelectRecipesQuery lists recipes, optionally filtered by category.
// The comparison ignores case and surrounding whitespace on both sides.
func buildSelectRecipesQuery(category string) (string, []any, error) {
	q := psql.Select(recipeColumns...).From(recipesTable)
	if category != "" {
		q = q.Where("lower(trim(category)) = lower(trim(?))", category)
	}

	return q.OrderBy("id").ToSql()
}

func buildSelectRecipeQuery(recipeID int64) (string, []any, error) {
	return psql.Select(recipeColumns...).
		From(recipesTable).
		Where(sq.Eq{"id": recipeID}).
		ToSql()
}

func buildRecipeExistsQuery(recipeID int64) (string, []any, error) {
	return psql.Select("1").
		From(recipesTable).
		Where(sq.Eq{"id": recipeID}).
		ToSql()
}

func buildInsertRecipeQuery(input models.RecipeInput) (string, []any, error) {
	return psql.Insert(recipesTable).
		Columns("title", "category", "image", "created_by", "description", "ingredients", "instructions", "favorite").
		Values(input.Title, input.Category, input.Image, input.CreatedBy, input.Description, input.Ingredients, input.Instructions, input.Favorite).
		Suffix(returning(recipeColumns)).
		ToSql()
}

func buildUpdateRecipeQuery(recipeID int64, input models.RecipeInput) (string, []any, error) {
	return psql.Update(recipesTable).
		Set("title", input.Title).
		Set("category", input.Category).
		Set("image", input.Image).
		Set("description", input.Description).
		Set("ingredients", input.Ingredients).
		Set("instructions", input.Instructions).
		Set("favorite", input.Favorite).
		Where(sq.Eq{"id": recipeID}).
		Suffix(returning(recipeColumns)).
		ToSql()
}

func buildDeleteRecipeQuery(recipeID int64) (string, []any, error) {
	return psql.Delete(recipesTable).
		Where(sq.Eq{"id": recipeID}).
		ToSql()
}

func buildSelectRatingsForUpdateQuery(recipeID int64) (string, []any, error) {
	return psql.Select("ratings").
		From(recipesTable).
		Where(sq.Eq{"id": recipeID}).
		Suffix("FOR UPDATE").
		ToSql()
}

func buildUpdateRatingsQuery(recipeID int64, ratings models.Ratings) (string, []any, error) {
	return psql.Update(recipesTable).
		Set("ratings", ratings).
		Where(sq.Eq{"id": recipeID}).
		ToSql()
}

// ── reviews ───────────────────────────────────────────────────────────────────

// buildSelectReviewsQuery fetches the reviews of several recipes in one
// round-trip, newest first.
func buildSelectReviewsQuery(recipeIDs []int64) (string, []any, error) {
	return psql.Select(reviewColumns...).
		From(reviewsTable).
		Where(sq.Eq{"recipe_id": recipeIDs}).
		OrderBy("created_at DESC", "id DESC").
		ToSql()
}

func buildInsertReviewQuery(review models.Review) (string, []any, error) {
	return psql.Insert(reviewsTable).
		Columns("recipe_id", "uid", "reviewer", "text", "rating").
		Values(review.RecipeID, review.UID, review.Reviewer, review.Text, review.Rating).
		Suffix(returning(reviewColumns)).
		ToSql()
}

// ── favorites ─────────────────────────────────────────────────────────────────

func buildSelectFavoriteQuery(userID, recipeID int64) (string, []any, error) {
	return psql.Select("id").
		From(favsTable).
		Where(sq.Eq{"user_id": userID, "recipe_id": recipeID}).
		ToSql()
}

func buildInsertFavoriteQuery(userID, recipeID int64) (string, []any, error) {
	return psql.Insert(favsTable).
		Columns("user_id", "recipe_id").
		Values(userID, recipeID).
		Suffix("ON CONFLICT (user_id, recipe_id) DO NOTHING").
		ToSql()
}

func buildDeleteFavoriteQuery(favoriteID int64) (string, []any, error) {
	return psql.Delete(favsTable).
		Where(sq.Eq{"id": favoriteID}).
		ToSql()
}

// buildSelectFavoriteRecipesQuery lists the user's favorited recipes, most
// recently favorited first.
func buildSelectFavoriteRecipesQuery(userID int64) (string, []any, error) {
	return psql.Select(qualified(recipesTable, recipeColumns)...).
		From(favsTable).
		Join(recipesTable + " ON " + favsTable + ".recipe_id = " + recipesTable + ".id").
		Where(sq.Eq{favsTable + ".user_id": userID}).
		OrderBy(favsTable + ".created_at DESC").
		ToSql()
}

func buildSelectFavoriteIDsQuery(userID int64) (string, []any, error) {
	return psql.Select("recipe_id").
		From(favsTable).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at DESC").
		ToSql()
}

// ── contact messages ──────────────────────────────────────────────────────────

func buildInsertContactQuery(msg models.ContactMessage) (string, []any, error) {
	return psql.Insert(contactsTable).
		Columns("name", "email", "message", "timestamp").
		Values(msg.Name, msg.Email, msg.Message, msg.Timestamp).
		Suffix(returning(contactColumns)).
		ToSql()
}
