package wordpool

// DefaultWords returns the built-in kid-friendly pool: nature, animals, food,
// everyday objects, places, actions, technology, colors and descriptions,
// body parts and clothing. Each call returns a fresh slice.
func DefaultWords() []string {
	return []string{
		"tree", "cloud", "rain", "snow", "sun", "moon", "star", "rock", "leaf", "lake",
		"hill", "beach", "island", "sand", "wind", "sky", "flower", "grass", "river", "pond",
		"bush", "petal", "shell", "twig", "mud", "berry", "acorn", "log", "pebble", "root",
		"moss", "dew", "wave", "bud", "branch", "pine", "rose", "daisy", "clover", "seed",
		"cat", "dog", "rabbit", "bear", "fox", "owl", "duck", "frog", "fish", "bird",
		"horse", "monkey", "turtle", "mouse", "lion", "tiger", "elephant", "penguin", "bee", "butterfly",
		"puppy", "kitten", "pony", "goat", "sheep", "pig", "cow", "hen", "chick", "crab",
		"snail", "ant", "worm", "bat", "deer", "swan", "goose", "seal", "otter", "ladybug",
		"apple", "banana", "grape", "cherry", "lemon", "peach", "carrot", "potato", "cookie", "cake",
		"bread", "cheese", "milk", "juice", "egg", "honey", "candy", "icecream", "pizza", "popcorn",
		"pear", "orange", "plum", "melon", "corn", "bean", "rice", "cracker", "waffle", "toast",
		"jam", "butter", "yogurt", "cereal", "muffin", "donut", "pancake", "syrup", "nut", "ball",
		"book", "box", "cup", "plate", "spoon", "fork", "bowl", "chair", "table", "pencil",
		"pen", "crayon", "toy", "block", "doll", "car", "train", "truck", "robot", "drum",
		"bell", "kite", "puzzle", "game", "lamp", "clock", "bag", "hat", "shoe", "sock",
		"scarf", "brush", "ribbon", "sticker", "coin", "key", "ring", "button", "towel", "house",
		"home", "school", "park", "garden", "store", "zoo", "farm", "room", "yard", "pool",
		"tent", "cabin", "barn", "forest", "playground", "bridge", "road", "cave", "castle", "tower",
		"treehouse", "bus", "boat", "ship", "plane", "station", "market", "mountain", "field", "valley",
		"dock", "pier", "dream", "idea", "story", "art", "music", "dance", "song", "play",
		"magic", "wish", "smile", "laugh", "hug", "love", "peace", "hope", "joy", "fun",
		"friend", "team", "party", "gift", "hero", "quest", "adventure", "race", "goal", "win",
		"draw", "build", "make", "find", "share", "help", "learn", "read", "write", "run",
		"walk", "jump", "swim", "fly", "climb", "sing", "hide", "seek", "catch", "throw",
		"kick", "spin", "hop", "skip", "slide", "swing", "dig", "paint", "color", "count",
		"clap", "cheer", "yawn", "nap", "rest", "look", "listen", "computer", "phone", "tablet",
		"tv", "camera", "radio", "fan", "rocket", "drone", "remote", "light", "mic", "speaker",
		"keyboard", "screen", "watch", "alarm", "battery", "plug", "wheel", "gear", "tool", "switch",
		"cord", "tape", "film", "chip", "disk", "red", "blue", "green", "yellow", "purple",
		"pink", "black", "white", "brown", "gray", "gold", "silver", "soft", "hard", "smooth",
		"rough", "shiny", "bright", "dark", "small", "big", "short", "tall", "fast", "slow",
		"warm", "cool", "sweet", "funny", "happy", "silly", "brave", "kind", "quiet", "loud",
		"clean", "messy", "new", "old", "head", "face", "eye", "ear", "nose", "mouth",
		"tooth", "tongue", "chin", "cheek", "hair", "neck", "shoulder", "arm", "elbow", "wrist",
		"hand", "finger", "thumb", "nail", "chest", "back", "waist", "hip", "leg", "knee",
		"ankle", "foot", "toe", "skin", "wink", "blink", "wild", "calm", "clear", "full",
		"empty", "open", "closed", "wet", "dry", "awake", "asleep", "alive", "young", "fresh",
		"simple", "common", "real", "shirt", "pants", "dress", "coat", "glove", "belt", "cap",
		"jacket", "sweater", "boot", "sandal", "pocket", "zipper", "collar", "cuff", "hem", "seam",
		"fabric", "cotton", "wool", "lace", "pattern", "stripe", "polka", "plaid", "bow", "tie",
		"clip", "band", "crown", "mask", "apron", "mitt", "vest", "robe",
	}
}
