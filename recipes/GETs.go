package recipes

import (
	"maps"
	"net/http"
	"net/url"
	"strings"

	"recipebook/apperr"
	"recipebook/models"
	"recipebook/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type namedRef struct {
	Name string `json:"name" bson:"name"`
}

// RecipeSummary is the listing projection: exactly name, cuisine name, tag
// names and prepTime. No top-level id, no sub-document ids.
type RecipeSummary struct {
	Name     string     `json:"name" bson:"name"`
	Cuisine  namedRef   `json:"cuisine" bson:"cuisine"`
	Tags     []namedRef `json:"tags" bson:"tags"`
	PrepTime any        `json:"prepTime,omitempty" bson:"prepTime,omitempty"`
}

var listProjection = bson.M{
	"_id":          0,
	"name":         1,
	"cuisine.name": 1,
	"tags.name":    1,
	"prepTime":     1,
}

// buildListFilter translates query parameters into a single Mongo filter.
// All filters are optional and combine with logical AND:
//   - tags: comma-separated, every named tag must be on the recipe
//   - cuisine: case-insensitive partial match on the cuisine name
//   - ingredients: comma-separated, every entry must partially match some
//     ingredient name (case-insensitive)
//   - name: case-insensitive partial match on the recipe name
func buildListFilter(q url.Values) bson.M {
	filter := bson.M{}

	if name := q.Get("name"); name != "" {
		maps.Copy(filter, utils.RegexFilter("name", name))
	}
	if cuisine := q.Get("cuisine"); cuisine != "" {
		maps.Copy(filter, utils.RegexFilter("cuisine.name", cuisine))
	}
	if tags := q.Get("tags"); tags != "" {
		filter["tags.name"] = bson.M{"$all": splitCSV(tags)}
	}
	if ingredients := q.Get("ingredients"); ingredients != "" {
		var clauses []bson.M
		for _, ing := range splitCSV(ingredients) {
			clauses = append(clauses, utils.RegexFilter("ingredients.name", ing))
		}
		filter["$and"] = clauses
	}

	return filter
}

func splitCSV(s string) []string {
	parts := strings.Split(s, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

// GET /recipes
func (h *Handler) GetRecipes(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	filter := buildListFilter(r.URL.Query())
	opts := options.Find().SetProjection(listProjection)

	recipes, err := utils.FindAndDecode[RecipeSummary](r.Context(), h.recipes, filter, opts)
	if err != nil {
		utils.RespondWithAppError(w, apperr.Wrap(apperr.StoreFailure, "recipe list failed", err))
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"recipes": recipes})
}

// GET /recipes/:id — full document minus its own top-level id.
func (h *Handler) GetRecipe(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id, err := primitive.ObjectIDFromHex(ps.ByName("id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "recipe not found")
		return
	}

	opts := options.FindOne().SetProjection(bson.M{"_id": 0})

	var recipe models.Recipe
	err = h.recipes.FindOne(r.Context(), bson.M{"_id": id}, opts).Decode(&recipe)
	if err == mongo.ErrNoDocuments {
		utils.RespondWithError(w, http.StatusNotFound, "recipe not found")
		return
	}
	if err != nil {
		utils.RespondWithAppError(w, apperr.Wrap(apperr.StoreFailure, "recipe fetch failed", err))
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, recipe)
}
