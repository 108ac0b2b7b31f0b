package extract

import (
	"regexp"
	"strings"
)

const (
	// 可用性門檻：前一策略產出少於這個步數就嘗試下一個策略
	minUsableSteps = 2
	// 步驟上限
	maxSteps = 15
	// 超過這個數量就先合併碎片
	consolidateThreshold = 20
	// 視為碎片的長度
	fragmentLength = 30
)

var (
	// 指令區段起始標記
	sectionStartPattern = regexp.MustCompile(`(?i)(instructions?|directions?|method|steps?|preparation)\s*[:：]`)

	// 區段結束標記（之後的內容不屬於做法）
	sectionEndMarkers = []string{
		"notes:", "nutrition", "subscribe", "follow me", "music by",
		"chapters:", "timestamps:", "equipment:", "faq",
	}

	// 編號步驟行：1. / 1) / step 1 / a)
	numberedStepPattern = regexp.MustCompile(`(?i)^\s*(?:\d+\s*[.)]|step\s*\d+\s*[:.]?|[a-z]\))\s*`)

	// 時長描述（15 minutes / 2 hrs）
	durationPattern = regexp.MustCompile(`(?i)\d+\s*(minutes?|mins?|hours?|hrs?|seconds?|secs?)`)

	// 料理動詞
	cookingVerbs = []string{
		"add", "mix", "stir", "cook", "heat", "bake", "pour", "place",
		"remove", "set", "let", "prepare", "boil", "simmer", "chop",
		"slice", "whisk", "fry", "season", "combine", "preheat", "serve",
	}

	// 社群導流字樣，含這些的行一律排除
	socialBoilerplate = []string{
		"subscribe", "follow", "youtube", "instagram", "facebook",
		"tiktok", "twitter", "patreon", "like and share", "my channel",
	}

	urlPattern = regexp.MustCompile(`(?i)https?://|www\.|\.com\b|bit\.ly`)
)

// ExtractInstructions 從自由文字抽出有序烹飪步驟，永不失敗
//
// 策略串接，前一個產出不足 minUsableSteps 才試下一個：
//  1. 找指令區段（Instructions:/Directions:/...），截到已知結束標記
//  2. 區段內優先取編號步驟行
//  3. 編號行不足則退回段落切分 + 料理動詞過濾
//  4. 完全沒有指令區段時，全文掃描動詞開頭或含時長的行
//
// 所有過濾都硬性排除 URL 與社群導流行
func ExtractInstructions(text string) []string {
	if strings.TrimSpace(text) == "" {
		return []string{}
	}

	var steps []string

	section, found := isolateInstructionSection(text)
	if found {
		steps = numberedSteps(section)
		if len(steps) < minUsableSteps {
			steps = paragraphSteps(section)
		}
	} else {
		steps = scanWholeText(text)
	}

	if len(steps) > consolidateThreshold {
		steps = consolidateFragments(steps)
	}

	if len(steps) > maxSteps {
		steps = steps[:maxSteps]
	}

	return steps
}

// isolateInstructionSection 找出指令區段並截到最近的結束標記
func isolateInstructionSection(text string) (string, bool) {
	loc := sectionStartPattern.FindStringIndex(text)
	if loc == nil {
		return "", false
	}

	section := text[loc[1]:]
	lower := strings.ToLower(section)

	cut := len(section)
	for _, marker := range sectionEndMarkers {
		if idx := strings.Index(lower, marker); idx != -1 && idx < cut {
			cut = idx
		}
	}

	return section[:cut], true
}

// numberedSteps 取編號步驟行並剝除編號前綴
func numberedSteps(section string) []string {
	steps := []string{}
	for _, line := range strings.Split(section, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || isExcludedLine(line) {
			continue
		}
		if numberedStepPattern.MatchString(line) {
			step := numberedStepPattern.ReplaceAllString(line, "")
			step = strings.TrimSpace(step)
			if step != "" {
				steps = append(steps, step)
			}
		}
	}
	return steps
}

// paragraphSteps 以空行切段，保留含料理動詞的段落
func paragraphSteps(section string) []string {
	steps := []string{}
	for _, para := range regexp.MustCompile(`\n\s*\n`).Split(section, -1) {
		para = strings.TrimSpace(strings.ReplaceAll(para, "\n", " "))
		if para == "" || isExcludedLine(para) {
			continue
		}
		if containsCookingVerb(para) {
			steps = append(steps, para)
		}
	}
	return steps
}

// scanWholeText 沒有指令區段時的最後手段：
// 全文逐行掃描，保留動詞開頭或含時長描述的行
func scanWholeText(text string) []string {
	steps := []string{}
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || isExcludedLine(line) {
			continue
		}
		if isVerbLed(line) || durationPattern.MatchString(line) {
			steps = append(steps, line)
		}
	}
	return steps
}

// isExcludedLine URL 或社群導流行，硬性排除而非扣分
func isExcludedLine(line string) bool {
	if urlPattern.MatchString(line) {
		return true
	}
	lower := strings.ToLower(line)
	for _, phrase := range socialBoilerplate {
		if strings.Contains(lower, phrase) {
			return true
		}
	}
	return false
}

func containsCookingVerb(text string) bool {
	lower := strings.ToLower(text)
	for _, verb := range cookingVerbs {
		if containsWord(lower, verb) {
			return true
		}
	}
	return false
}

// isVerbLed 行首（跳過編號）是否為料理動詞
func isVerbLed(line string) bool {
	stripped := numberedStepPattern.ReplaceAllString(line, "")
	fields := strings.Fields(strings.ToLower(stripped))
	if len(fields) == 0 {
		return false
	}
	first := strings.Trim(fields[0], ",.;:")
	for _, verb := range cookingVerbs {
		if first == verb {
			return true
		}
	}
	return false
}

// containsWord 整詞匹配，避免 "add" 誤中 "address"
func containsWord(text, word string) bool {
	idx := 0
	for {
		pos := strings.Index(text[idx:], word)
		if pos == -1 {
			return false
		}
		start := idx + pos
		end := start + len(word)
		beforeOK := start == 0 || !isWordChar(text[start-1])
		afterOK := end == len(text) || !isWordChar(text[end])
		if beforeOK && afterOK {
			return true
		}
		idx = start + 1
	}
}

func isWordChar(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9'
}

// consolidateFragments 將相鄰的過短碎片併回前一步，避免過度切碎
func consolidateFragments(steps []string) []string {
	out := []string{}
	for _, step := range steps {
		if len(step) < fragmentLength && len(out) > 0 {
			out[len(out)-1] = out[len(out)-1] + " " + step
			continue
		}
		out = append(out, step)
	}
	return out
}
