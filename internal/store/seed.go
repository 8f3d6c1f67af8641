package store

import (
	"context"
	"fmt"

	"github.com/Jun-ho-Kim-ops/chinese-slang-app/ent"
)

type seedSentence struct {
	zh   string
	en   string
	note string
}

type seedWord struct {
	hanzi      string
	pinyin     string
	meaning    string
	background string
	year       int
	month      int
	popularity int
	category   string
	sentences  []seedSentence
}

type seedCategory struct {
	name string
	slug string
}

var seedCategories = []seedCategory{
	{name: "网络游戏", slug: "gaming"},
	{name: "职场生活", slug: "work"},
	{name: "梗与表情", slug: "meme"},
	{name: "社交吃瓜", slug: "social"},
	{name: "饭圈文化", slug: "fandom"},
	{name: "日常生活", slug: "lifestyle"},
}

var seedWords = []seedWord{
	{
		hanzi: "氪金", pinyin: "kè jīn", meaning: "to spend real money on in-game purchases",
		background: "Originally 课金 from Japanese kakin; the kè of krypton stuck because it sounds cooler. Describes paying for gacha pulls, skins and upgrades.",
		year:       2014, month: 6, popularity: 86, category: "gaming",
		sentences: []seedSentence{
			{zh: "他为了这个新皮肤又氪金了。", en: "He spent money again for that new skin."},
			{zh: "不氪金也能玩，就是升级慢。", en: "You can play without paying, it's just slower to level up.", note: "也能 = 'can also', concessive"},
		},
	},
	{
		hanzi: "开黑", pinyin: "kāi hēi", meaning: "to team up with friends in a game (usually on voice chat)",
		background: "From 开黑店, opening a 'black shop' — queueing as a premade group against randoms.",
		year:       2015, month: 3, popularity: 74, category: "gaming",
		sentences: []seedSentence{
			{zh: "晚上一起开黑吗？", en: "Want to queue up together tonight?"},
			{zh: "我们五个人开黑，赢麻了。", en: "The five of us played as a team and won like crazy."},
		},
	},
	{
		hanzi: "破防", pinyin: "pò fáng", meaning: "emotionally overwhelmed; one's defenses are broken",
		background: "A gaming term for breaking an opponent's guard, repurposed for the moment something hits you right in the feelings.",
		year:       2021, month: 7, popularity: 90, category: "gaming",
		sentences: []seedSentence{
			{zh: "看到那段视频我直接破防了。", en: "That video completely broke me."},
			{zh: "这句话说得我有点破防。", en: "That remark got under my skin a little."},
		},
	},
	{
		hanzi: "内卷", pinyin: "nèi juǎn", meaning: "involution; pointless intensifying competition",
		background: "An anthropology term that escaped academia in 2020 to describe zero-sum grind culture in school and at work.",
		year:       2020, month: 9, popularity: 95, category: "work",
		sentences: []seedSentence{
			{zh: "这个行业太内卷了。", en: "This industry is insanely competitive."},
			{zh: "大家都加班，不加班就显得不努力，真是内卷。", en: "Everyone works overtime, and not doing so looks lazy — classic involution."},
		},
	},
	{
		hanzi: "躺平", pinyin: "tǎng píng", meaning: "to lie flat; opt out of the rat race",
		background: "The counter-move to 内卷: do the minimum, want less, refuse to compete.",
		year:       2021, month: 4, popularity: 92, category: "work",
		sentences: []seedSentence{
			{zh: "卷不动了，我选择躺平。", en: "I can't grind anymore, I choose to lie flat."},
			{zh: "躺平不是放弃，是换一种活法。", en: "Lying flat isn't giving up, it's a different way to live."},
		},
	},
	{
		hanzi: "打工人", pinyin: "dǎ gōng rén", meaning: "worker; wage earner (self-deprecating but proud)",
		background: "Went viral in late 2020 through 早安，打工人! morning-greeting memes embracing the daily grind.",
		year:       2020, month: 10, popularity: 88, category: "work",
		sentences: []seedSentence{
			{zh: "早安，打工人！", en: "Good morning, fellow workers!"},
			{zh: "打工人打工魂，打工都是人上人。", en: "Worker body, worker soul — workers are above us all.", note: "人上人 = a cut above the rest"},
		},
	},
	{
		hanzi: "摸鱼", pinyin: "mō yú", meaning: "to slack off at work while pretending to be busy",
		background: "From 浑水摸鱼, fishing in muddy waters. The office art of looking productive.",
		year:       2019, month: 5, popularity: 80, category: "work",
		sentences: []seedSentence{
			{zh: "今天没什么事，摸了一天鱼。", en: "Nothing going on today, I slacked off all day."},
			{zh: "上班摸鱼被老板抓到了。", en: "The boss caught me slacking off at work."},
		},
	},
	{
		hanzi: "永远的神", pinyin: "yǒng yuǎn de shén", meaning: "the eternal GOAT (abbreviated yyds)",
		background: "A gaming streamer's praise for the player Uzi. The pinyin initialism yyds now gets stamped on anything delicious, beautiful or clutch.",
		year:       2021, month: 1, popularity: 97, category: "meme",
		sentences: []seedSentence{
			{zh: "这家店的火锅，永远的神！", en: "This place's hotpot — the absolute GOAT!"},
			{zh: "李白的诗yyds。", en: "Li Bai's poetry is the GOAT."},
		},
	},
	{
		hanzi: "绝绝子", pinyin: "jué jué zi", meaning: "amazing, incredible (cutesy emphatic)",
		background: "Reduplicated 绝 plus the diminutive 子, popularized by variety-show fan circles. Either high praise or biting sarcasm.",
		year:       2021, month: 3, popularity: 78, category: "meme",
		sentences: []seedSentence{
			{zh: "这个配色绝绝子！", en: "This color scheme is to die for!"},
			{zh: "今天的晚霞绝绝子。", en: "Tonight's sunset is unreal."},
		},
	},
	{
		hanzi: "吃瓜", pinyin: "chī guā", meaning: "to watch drama unfold as a bystander",
		background: "From 吃瓜群众, the melon-eating masses — onlookers munching melon seeds while the gossip plays out.",
		year:       2016, month: 8, popularity: 89, category: "social",
		sentences: []seedSentence{
			{zh: "我只是来吃瓜的，别问我。", en: "I'm just here for the drama, don't ask me."},
			{zh: "今晚的瓜太大了，吃不完。", en: "Tonight's gossip is too juicy to keep up with.", note: "瓜 alone = the gossip itself"},
		},
	},
	{
		hanzi: "凡尔赛", pinyin: "fán ěr sài", meaning: "humblebragging (Versailles literature)",
		background: "After the palace: complaints carefully crafted to show off, as in 'ugh, my husband bought me another car, the garage is full'.",
		year:       2020, month: 11, popularity: 83, category: "social",
		sentences: []seedSentence{
			{zh: "他又在朋友圈凡尔赛了。", en: "He's humblebragging on his feed again."},
			{zh: "这波凡尔赛我给满分。", en: "Full marks for that humblebrag."},
		},
	},
	{
		hanzi: "磕CP", pinyin: "kē CP", meaning: "to ship a couple obsessively",
		background: "磕 as in cracking seeds or taking a hit; CP from 'coupling'. Fans 磕 their favorite pairing, real or fictional.",
		year:       2019, month: 2, popularity: 72, category: "fandom",
		sentences: []seedSentence{
			{zh: "我磕的CP今天又发糖了！", en: "My ship served sweetness again today!", note: "发糖 = giving fans 'candy', i.e. shippable moments"},
			{zh: "磕CP一时爽，一直磕一直爽。", en: "Shipping feels great for a moment — keep shipping and it keeps feeling great."},
		},
	},
	{
		hanzi: "种草", pinyin: "zhòng cǎo", meaning: "to get sold on a product; to plant the urge to buy",
		background: "Influencers plant grass in your heart; 拔草 pulls it out when you finally buy (or resist).",
		year:       2018, month: 4, popularity: 76, category: "lifestyle",
		sentences: []seedSentence{
			{zh: "被博主种草了这款相机。", en: "That blogger sold me on this camera."},
			{zh: "这个牌子的奶茶我早就被种草了。", en: "I've been meaning to try this bubble tea brand forever."},
		},
	},
	{
		hanzi: "干饭人", pinyin: "gàn fàn rén", meaning: "enthusiastic eater; chowhound",
		background: "干饭 is Sichuan dialect for digging into a meal with gusto. 干饭人，干饭魂 — eating is serious business.",
		year:       2020, month: 12, popularity: 70, category: "lifestyle",
		sentences: []seedSentence{
			{zh: "干饭人干饭魂，干饭人吃饭得用盆。", en: "Eater's body, eater's soul — a true eater needs a basin, not a bowl."},
			{zh: "中午了，干饭人出动！", en: "It's noon — the chowhounds are on the move!"},
		},
	},
}

// Seed populates an empty database with the built-in starter catalog.
// A database that already has words is left untouched, so imports and
// user edits survive restarts.
func Seed(ctx context.Context, client *ent.Client) error {
	n, err := client.Word.Query().Count(ctx)
	if err != nil {
		return fmt.Errorf("count words: %w", err)
	}
	if n > 0 {
		return nil
	}

	cats := make(map[string]*ent.Category, len(seedCategories))
	for _, sc := range seedCategories {
		c, err := client.Category.Create().
			SetName(sc.name).
			SetSlug(sc.slug).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("seed category %s: %w", sc.slug, err)
		}
		cats[sc.slug] = c
	}

	for _, sw := range seedWords {
		cat, ok := cats[sw.category]
		if !ok {
			return fmt.Errorf("seed word %s references unknown category %s", sw.hanzi, sw.category)
		}
		w, err := client.Word.Create().
			SetHanzi(sw.hanzi).
			SetPinyin(sw.pinyin).
			SetMeaning(sw.meaning).
			SetBackground(sw.background).
			SetOriginYear(sw.year).
			SetOriginMonth(sw.month).
			SetPopularity(sw.popularity).
			SetCategory(cat).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("seed word %s: %w", sw.hanzi, err)
		}
		for i, ss := range sw.sentences {
			_, err := client.Sentence.Create().
				SetZh(ss.zh).
				SetEn(ss.en).
				SetNote(ss.note).
				SetDisplayOrder(i + 1).
				SetWord(w).
				Save(ctx)
			if err != nil {
				return fmt.Errorf("seed sentence for %s: %w", sw.hanzi, err)
			}
		}
	}

	return nil
}
