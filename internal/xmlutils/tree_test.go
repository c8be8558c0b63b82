package xmlutils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleXML = `<OFX>
<SIGNONMSGSRSV1>
<SONRS>
<STATUS><CODE>0</CODE></STATUS>
<LANGUAGE> ENG </LANGUAGE>
</SONRS>
</SIGNONMSGSRSV1>
<BANKMSGSRSV1>
<STMTTRNRS><TRNUID>1</TRNUID></STMTTRNRS>
<STMTTRNRS><TRNUID>2</TRNUID></STMTTRNRS>
</BANKMSGSRSV1>
</OFX>`

func TestParseTree(t *testing.T) {
	root, err := ParseTree(strings.NewReader(sampleXML))
	require.NoError(t, err)
	assert.Equal(t, "OFX", root.Name())

	sonrs := root.Path("SIGNONMSGSRSV1", "SONRS")
	require.NotNil(t, sonrs)
	assert.Equal(t, "ENG", sonrs.ChildText("LANGUAGE"))
	assert.Equal(t, "0", sonrs.PathText("STATUS", "CODE"))

	assert.Nil(t, root.Path("SIGNONMSGSRSV1", "NOPE"))
	assert.Equal(t, "", root.PathText("SIGNONMSGSRSV1", "NOPE"))

	responses := root.Child("BANKMSGSRSV1").ChildrenNamed("STMTTRNRS")
	require.Len(t, responses, 2)
	assert.Equal(t, "1", responses[0].ChildText("TRNUID"))
	assert.Equal(t, "2", responses[1].ChildText("TRNUID"))

	assert.True(t, root.Has("BANKMSGSRSV1"))
	assert.False(t, root.Has("CREDITCARDMSGSRSV1"))
}

func TestParseTreeMalformed(t *testing.T) {
	_, err := ParseTree(strings.NewReader("<OFX><UNCLOSED></OFX>"))
	assert.Error(t, err)
}

func TestExists(t *testing.T) {
	root, err := LoadXML(strings.NewReader(sampleXML))
	require.NoError(t, err)

	ok, err := Exists(root, "/OFX/SIGNONMSGSRSV1/SONRS")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = Exists(root, "/OFX/INVSTMTMSGSRSV1")
	require.NoError(t, err)
	assert.False(t, ok)
}
