package recipes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"recipebook/db"
	"recipebook/db/dbtest"
	"recipebook/models"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

func newTestHandler(coll, cuisines, tags *dbtest.FakeCollection) *Handler {
	return NewHandler(&db.Database{Recipes: coll, Cuisines: cuisines, Tags: tags})
}

func validInput() map[string]any {
	return map[string]any{
		"name":         "Carbonara",
		"cuisine":      "Italian",
		"prepTime":     "15 min",
		"cookTime":     "20 min",
		"servings":     4,
		"ingredients":  []map[string]any{{"name": "eggs"}, {"name": "guanciale"}},
		"instructions": []string{"whisk", "fry", "combine"},
		"tags":         []string{"pasta"},
	}
}

func refFakes() (*dbtest.FakeCollection, *dbtest.FakeCollection) {
	cuisines := &dbtest.FakeCollection{
		FindOneDoc: models.Cuisine{ID: primitive.NewObjectID(), Name: "Italian"},
	}
	tags := &dbtest.FakeCollection{
		FindDocs: []interface{}{
			models.Tag{ID: primitive.NewObjectID(), Name: "pasta"},
		},
	}
	return cuisines, tags
}

func doRequest(h httprouter.Handle, method, target string, body any, ps httprouter.Params) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, target, &buf)
	rec := httptest.NewRecorder()
	h(rec, req, ps)
	return rec
}

func errorBody(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body["error"]
}

func TestCreateRecipe_MissingFields(t *testing.T) {
	cuisines, tags := refFakes()
	h := newTestHandler(&dbtest.FakeCollection{}, cuisines, tags)

	rec := doRequest(h.CreateRecipe, http.MethodPost, "/recipes", map[string]any{"name": "Carbonara"}, nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, errorBody(t, rec), "cannot be blank")
}

func TestCreateRecipe_InvalidBody(t *testing.T) {
	cuisines, tags := refFakes()
	h := newTestHandler(&dbtest.FakeCollection{}, cuisines, tags)

	req := httptest.NewRequest(http.MethodPost, "/recipes", bytes.NewBufferString("{not json"))
	rec := httptest.NewRecorder()
	h.CreateRecipe(rec, req, nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateRecipe_UnknownCuisine(t *testing.T) {
	cuisines := &dbtest.FakeCollection{} // cuisine lookup finds nothing
	tags := &dbtest.FakeCollection{}
	h := newTestHandler(&dbtest.FakeCollection{}, cuisines, tags)

	rec := doRequest(h.CreateRecipe, http.MethodPost, "/recipes", validInput(), nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, errorBody(t, rec), "does not exist")
}

func TestCreateRecipe_Success(t *testing.T) {
	insertedID := primitive.NewObjectID()
	coll := &dbtest.FakeCollection{InsertedID: insertedID}
	cuisines, tags := refFakes()
	h := newTestHandler(coll, cuisines, tags)

	rec := doRequest(h.CreateRecipe, http.MethodPost, "/recipes", validInput(), nil)

	require.Equal(t, http.StatusCreated, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, insertedID.Hex(), body["recipeId"])

	doc, ok := coll.GotDocument.(*models.Recipe)
	require.True(t, ok)
	// The stored cuisine/tags are snapshots from the reference collections.
	assert.Equal(t, "Italian", doc.Cuisine.Name)
	assert.False(t, doc.Cuisine.ID.IsZero())
	require.Len(t, doc.Tags, 1)
	assert.Equal(t, "pasta", doc.Tags[0].Name)
	// New recipes start with an empty, non-nil review sequence.
	assert.NotNil(t, doc.Reviews)
	assert.Empty(t, doc.Reviews)
}

func TestUpdateRecipe_NotFound(t *testing.T) {
	coll := &dbtest.FakeCollection{UpdateResult: &mongo.UpdateResult{MatchedCount: 0}}
	cuisines, tags := refFakes()
	h := newTestHandler(coll, cuisines, tags)

	id := primitive.NewObjectID().Hex()
	rec := doRequest(h.UpdateRecipe, http.MethodPut, "/recipes/"+id, validInput(),
		httprouter.Params{{Key: "id", Value: id}})

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "recipe not found", errorBody(t, rec))
}

func TestUpdateRecipe_InvalidID(t *testing.T) {
	cuisines, tags := refFakes()
	h := newTestHandler(&dbtest.FakeCollection{}, cuisines, tags)

	rec := doRequest(h.UpdateRecipe, http.MethodPut, "/recipes/notanid", validInput(),
		httprouter.Params{{Key: "id", Value: "notanid"}})

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUpdateRecipe_OverwritesContractFieldsOnly(t *testing.T) {
	coll := &dbtest.FakeCollection{}
	cuisines, tags := refFakes()
	h := newTestHandler(coll, cuisines, tags)

	in := validInput()
	delete(in, "servings") // omitted fields are overwritten, not preserved

	id := primitive.NewObjectID().Hex()
	rec := doRequest(h.UpdateRecipe, http.MethodPut, "/recipes/"+id, in,
		httprouter.Params{{Key: "id", Value: id}})

	require.Equal(t, http.StatusOK, rec.Code)

	update, ok := coll.GotUpdate.(bson.M)
	require.True(t, ok)
	set, ok := update["$set"].(bson.M)
	require.True(t, ok)

	for _, field := range []string{"name", "cuisine", "prepTime", "cookTime", "servings", "ingredients", "instructions", "tags"} {
		assert.Contains(t, set, field)
	}
	assert.Nil(t, set["servings"])
	// Replace never touches the embedded review sequence.
	assert.NotContains(t, set, "reviews")
}

func TestDeleteRecipe_NotFound(t *testing.T) {
	coll := &dbtest.FakeCollection{DeleteResult: &mongo.DeleteResult{DeletedCount: 0}}
	cuisines, tags := refFakes()
	h := newTestHandler(coll, cuisines, tags)

	id := primitive.NewObjectID().Hex()
	rec := doRequest(h.DeleteRecipe, http.MethodDelete, "/recipes/"+id, nil,
		httprouter.Params{{Key: "id", Value: id}})

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteRecipe_Success(t *testing.T) {
	coll := &dbtest.FakeCollection{}
	cuisines, tags := refFakes()
	h := newTestHandler(coll, cuisines, tags)

	id := primitive.NewObjectID().Hex()
	rec := doRequest(h.DeleteRecipe, http.MethodDelete, "/recipes/"+id, nil,
		httprouter.Params{{Key: "id", Value: id}})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, bson.M{"_id": mustObjectID(t, id)}, coll.GotFilter)
}

func mustObjectID(t *testing.T, hex string) primitive.ObjectID {
	t.Helper()
	id, err := primitive.ObjectIDFromHex(hex)
	require.NoError(t, err)
	return id
}
