package bcex_test

import (
	"encoding/json"
	"strings"
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/simon-bc/bcex/pkg/bcex"
	"gotest.tools/assert"
)

func TestClientOrderIDGenerate(t *testing.T) {
	id := bcex.ClientOrderIDGenerate()
	str := id.String()

	assert.Equal(t, len(str), 17)
	assert.Check(t, strings.HasSuffix(str, "_bcexgo"), "venue tag suffix")

	other := bcex.ClientOrderIDGenerate()
	assert.Check(t, id != other, "ids are unique")
}

func TestClientOrderID_StrToType(t *testing.T) {
	id, err := bcex.ClientOrderIDStrToType("myorder_1")
	assert.NilError(t, err)
	assert.Equal(t, id.String(), "myorder_1")

	_, err = bcex.ClientOrderIDStrToType("definitely_longer_than_twenty_characters")
	assert.ErrorContains(t, err, "too long clientOrderId")
}

func TestClientOrderID_JSON(t *testing.T) {
	id := bcex.ClientOrderIDGenerateFast(42)

	val, err := json.Marshal(id)
	assert.NilError(t, err)
	assert.Equal(t, string(val), `"42"`)

	var parsed bcex.ClientOrderID
	err = jsoniter.Unmarshal([]byte(`"myorder_1"`), &parsed)
	assert.NilError(t, err)
	assert.Equal(t, parsed.String(), "myorder_1")

	_, err = json.Marshal(bcex.ClientOrderID{})
	assert.ErrorContains(t, err, "fail marshal empty clientOrderId")
}
