package extract

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractInstructionsNumberedSection(t *testing.T) {
	text := `My favorite curry!

Instructions:
1. Chop the onions
2. Heat oil in a pan
3. Add onions and cook until golden

Notes: use a heavy pan`

	steps := ExtractInstructions(text)

	assert.Equal(t, []string{
		"Chop the onions",
		"Heat oil in a pan",
		"Add onions and cook until golden",
	}, steps)
}

func TestExtractInstructionsStripNumberingVariants(t *testing.T) {
	text := `Directions:
1) Preheat the oven to 180C
Step 2: Mix the dry ingredients
step 3. Pour into the pan`

	steps := ExtractInstructions(text)

	assert.Len(t, steps, 3)
	for _, s := range steps {
		assert.NotRegexp(t, `(?i)^(\d|step)`, s, "編號前綴必須剝除: %q", s)
	}
}

func TestExtractInstructionsSectionEndsAtMarker(t *testing.T) {
	text := `Method:
1. Boil the pasta
2. Stir in the sauce
Nutrition facts: 500 kcal
3. This should not appear`

	steps := ExtractInstructions(text)

	assert.Equal(t, []string{"Boil the pasta", "Stir in the sauce"}, steps)
}

func TestExtractInstructionsParagraphFallback(t *testing.T) {
	// 區段內沒有編號行，退回段落切分 + 料理動詞過濾
	text := `Instructions:
Heat the oil in a large pan over medium heat until shimmering.

Add the garlic and stir for about a minute.

This dish pairs well with white wine.`

	steps := ExtractInstructions(text)

	assert.Len(t, steps, 2)
	assert.Contains(t, steps[0], "Heat the oil")
	assert.Contains(t, steps[1], "Add the garlic")
}

func TestExtractInstructionsWholeTextScan(t *testing.T) {
	// 沒有任何區段標記：全文掃描動詞開頭或含時長的行
	text := `Today I'm making grandma's stew.
Chop the carrots into small pieces
Simmer everything for 45 minutes
Thanks for watching!`

	steps := ExtractInstructions(text)

	assert.Equal(t, []string{
		"Chop the carrots into small pieces",
		"Simmer everything for 45 minutes",
	}, steps)
}

func TestExtractInstructionsSocialOnlyText(t *testing.T) {
	text := `Subscribe to my channel!
Follow me on instagram
https://example.com/merch
Like and share if you enjoyed`

	steps := ExtractInstructions(text)

	assert.NotNil(t, steps)
	assert.Empty(t, steps)
}

func TestExtractInstructionsExcludesURLsInsideSection(t *testing.T) {
	text := `Instructions:
1. Mix the batter
2. Get my pans at www.example.com
3. Bake for 30 minutes`

	steps := ExtractInstructions(text)

	assert.Equal(t, []string{"Mix the batter", "Bake for 30 minutes"}, steps)
}

func TestExtractInstructionsCapAtFifteen(t *testing.T) {
	var b strings.Builder
	b.WriteString("Instructions:\n")
	for i := 1; i <= 18; i++ {
		// 每行夠長，不會被當碎片合併
		fmt.Fprintf(&b, "%d. Stir the mixture thoroughly for round number %d of the process\n", i, i)
	}

	steps := ExtractInstructions(b.String())
	assert.Len(t, steps, 15)
}

func TestExtractInstructionsConsolidatesFragments(t *testing.T) {
	var b strings.Builder
	b.WriteString("Instructions:\n")
	for i := 1; i <= 25; i++ {
		fmt.Fprintf(&b, "%d. Stir pot %d\n", i, i)
	}

	steps := ExtractInstructions(b.String())

	// 25 個碎片先合併再截斷，絕不超過上限
	assert.LessOrEqual(t, len(steps), 15)
	assert.NotEmpty(t, steps)
}

func TestExtractInstructionsEmptyInput(t *testing.T) {
	assert.Empty(t, ExtractInstructions(""))
	assert.Empty(t, ExtractInstructions("   \n\t  "))
}

func TestContainsWordWholeWordOnly(t *testing.T) {
	assert.True(t, containsWord("add the salt", "add"))
	assert.False(t, containsWord("update the address", "add"))
	assert.True(t, containsWord("stir, then serve", "serve"))
}
