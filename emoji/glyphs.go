package emoji

// Static glyph tables. Display order follows the common vendor emoji
// picker ordering within each category.

var smileys = []Emoji{
	{"😀", "grinning face"},
	{"😃", "grinning face with big eyes"},
	{"😄", "grinning face with smiling eyes"},
	{"😁", "beaming face with smiling eyes"},
	{"😆", "grinning squinting face"},
	{"😅", "grinning face with sweat"},
	{"🤣", "rolling on the floor laughing"},
	{"😂", "face with tears of joy"},
	{"🙂", "slightly smiling face"},
	{"😉", "winking face"},
	{"😊", "smiling face with smiling eyes"},
	{"😇", "smiling face with halo"},
	{"🥰", "smiling face with hearts"},
	{"😍", "smiling face with heart eyes"},
	{"🤩", "star struck"},
	{"😘", "face blowing a kiss"},
	{"😋", "face savoring food"},
	{"😜", "winking face with tongue"},
	{"🤔", "thinking face"},
	{"😐", "neutral face"},
	{"😴", "sleeping face"},
	{"🥶", "cold face"},
	{"😎", "smiling face with sunglasses"},
	{"😢", "crying face"},
	{"😭", "loudly crying face"},
	{"😡", "enraged face"},
	{"👍", "thumbs up"},
	{"👎", "thumbs down"},
	{"👏", "clapping hands"},
	{"🙏", "folded hands"},
	{"💪", "flexed biceps"},
	{"❤️", "red heart"},
}

var animals = []Emoji{
	{"🐶", "dog face"},
	{"🐱", "cat face"},
	{"🐭", "mouse face"},
	{"🐹", "hamster"},
	{"🐰", "rabbit face"},
	{"🦊", "fox"},
	{"🐻", "bear"},
	{"🐼", "panda"},
	{"🐨", "koala"},
	{"🐯", "tiger face"},
	{"🦁", "lion"},
	{"🐮", "cow face"},
	{"🐷", "pig face"},
	{"🐸", "frog"},
	{"🐵", "monkey face"},
	{"🐔", "chicken"},
	{"🐧", "penguin"},
	{"🐦", "bird"},
	{"🦆", "duck"},
	{"🦉", "owl"},
	{"🐴", "horse face"},
	{"🦄", "unicorn"},
	{"🐝", "honeybee"},
	{"🦋", "butterfly"},
	{"🐢", "turtle"},
	{"🐙", "octopus"},
	{"🐳", "spouting whale"},
	{"🐬", "dolphin"},
	{"🌵", "cactus"},
	{"🌲", "evergreen tree"},
	{"🌸", "cherry blossom"},
	{"🌻", "sunflower"},
}

var foods = []Emoji{
	{"🍏", "green apple"},
	{"🍎", "red apple"},
	{"🍐", "pear"},
	{"🍊", "tangerine"},
	{"🍋", "lemon"},
	{"🍌", "banana"},
	{"🍉", "watermelon"},
	{"🍇", "grapes"},
	{"🍓", "strawberry"},
	{"🍒", "cherries"},
	{"🍑", "peach"},
	{"🥭", "mango"},
	{"🍍", "pineapple"},
	{"🥑", "avocado"},
	{"🥦", "broccoli"},
	{"🌽", "ear of corn"},
	{"🥕", "carrot"},
	{"🍞", "bread"},
	{"🥐", "croissant"},
	{"🧀", "cheese wedge"},
	{"🍔", "hamburger"},
	{"🍟", "french fries"},
	{"🍕", "pizza"},
	{"🌮", "taco"},
	{"🍣", "sushi"},
	{"🍜", "steaming bowl"},
	{"🍦", "soft ice cream"},
	{"🍩", "doughnut"},
	{"🍪", "cookie"},
	{"🎂", "birthday cake"},
	{"☕", "hot beverage"},
	{"🍺", "beer mug"},
}

var activities = []Emoji{
	{"⚽", "soccer ball"},
	{"🏀", "basketball"},
	{"🏈", "american football"},
	{"⚾", "baseball"},
	{"🎾", "tennis"},
	{"🏐", "volleyball"},
	{"🏉", "rugby football"},
	{"🎱", "pool 8 ball"},
	{"🏓", "ping pong"},
	{"🏸", "badminton"},
	{"🥊", "boxing glove"},
	{"⛳", "flag in hole"},
	{"⛸️", "ice skate"},
	{"🎣", "fishing pole"},
	{"🎽", "running shirt"},
	{"🎿", "skis"},
	{"🛹", "skateboard"},
	{"🏋️", "person lifting weights"},
	{"🚴", "person biking"},
	{"🏆", "trophy"},
	{"🥇", "first place medal"},
	{"🎪", "circus tent"},
	{"🎭", "performing arts"},
	{"🎨", "artist palette"},
	{"🎬", "clapper board"},
	{"🎤", "microphone"},
	{"🎧", "headphone"},
	{"🎸", "guitar"},
	{"🎹", "musical keyboard"},
	{"🥁", "drum"},
	{"🎯", "bullseye"},
	{"🎮", "video game"},
}

var travels = []Emoji{
	{"🚗", "automobile"},
	{"🚕", "taxi"},
	{"🚌", "bus"},
	{"🏎️", "racing car"},
	{"🚓", "police car"},
	{"🚑", "ambulance"},
	{"🚒", "fire engine"},
	{"🚚", "delivery truck"},
	{"🚜", "tractor"},
	{"🛵", "motor scooter"},
	{"🏍️", "motorcycle"},
	{"🚲", "bicycle"},
	{"🚂", "locomotive"},
	{"🚆", "train"},
	{"🚇", "metro"},
	{"✈️", "airplane"},
	{"🚀", "rocket"},
	{"🛸", "flying saucer"},
	{"🚁", "helicopter"},
	{"⛵", "sailboat"},
	{"🚢", "ship"},
	{"⚓", "anchor"},
	{"🗽", "statue of liberty"},
	{"🗼", "tokyo tower"},
	{"🏰", "castle"},
	{"🎡", "ferris wheel"},
	{"🏖️", "beach with umbrella"},
	{"🏔️", "snow capped mountain"},
	{"🌋", "volcano"},
	{"🏕️", "camping"},
	{"🌃", "night with stars"},
	{"🌍", "globe showing europe africa"},
}

var objects = []Emoji{
	{"⌚", "watch"},
	{"📱", "mobile phone"},
	{"💻", "laptop"},
	{"⌨️", "keyboard"},
	{"🖥️", "desktop computer"},
	{"🖨️", "printer"},
	{"🖱️", "computer mouse"},
	{"🕹️", "joystick"},
	{"💽", "computer disk"},
	{"💾", "floppy disk"},
	{"💿", "optical disk"},
	{"📷", "camera"},
	{"🎥", "movie camera"},
	{"📺", "television"},
	{"📻", "radio"},
	{"⏰", "alarm clock"},
	{"🔋", "battery"},
	{"🔌", "electric plug"},
	{"💡", "light bulb"},
	{"🔦", "flashlight"},
	{"🕯️", "candle"},
	{"🗑️", "wastebasket"},
	{"💰", "money bag"},
	{"💳", "credit card"},
	{"🔧", "wrench"},
	{"🔨", "hammer"},
	{"🧲", "magnet"},
	{"🔬", "microscope"},
	{"🔭", "telescope"},
	{"📚", "books"},
	{"✏️", "pencil"},
	{"📌", "pushpin"},
}

var symbols = []Emoji{
	{"❤️", "red heart"},
	{"🧡", "orange heart"},
	{"💛", "yellow heart"},
	{"💚", "green heart"},
	{"💙", "blue heart"},
	{"💜", "purple heart"},
	{"🖤", "black heart"},
	{"💔", "broken heart"},
	{"💯", "hundred points"},
	{"💢", "anger symbol"},
	{"💬", "speech balloon"},
	{"💤", "zzz"},
	{"♻️", "recycling symbol"},
	{"⚜️", "fleur de lis"},
	{"🔱", "trident emblem"},
	{"⭕", "hollow red circle"},
	{"✅", "check mark button"},
	{"❌", "cross mark"},
	{"❎", "cross mark button"},
	{"➕", "plus"},
	{"➖", "minus"},
	{"➗", "divide"},
	{"✖️", "multiply"},
	{"💲", "heavy dollar sign"},
	{"❓", "question mark"},
	{"❗", "exclamation mark"},
	{"⚠️", "warning"},
	{"🚸", "children crossing"},
	{"🔆", "bright button"},
	{"🎵", "musical note"},
	{"🎶", "musical notes"},
	{"♾️", "infinity"},
}

var flags = []Emoji{
	{"🏁", "chequered flag"},
	{"🚩", "triangular flag"},
	{"🎌", "crossed flags"},
	{"🏴", "black flag"},
	{"🏳️", "white flag"},
	{"🏳️‍🌈", "rainbow flag"},
	{"🏴‍☠️", "pirate flag"},
	{"🇦🇺", "flag australia"},
	{"🇧🇷", "flag brazil"},
	{"🇨🇦", "flag canada"},
	{"🇨🇳", "flag china"},
	{"🇩🇪", "flag germany"},
	{"🇪🇸", "flag spain"},
	{"🇫🇷", "flag france"},
	{"🇬🇧", "flag united kingdom"},
	{"🇮🇳", "flag india"},
	{"🇮🇹", "flag italy"},
	{"🇯🇵", "flag japan"},
	{"🇰🇷", "flag south korea"},
	{"🇲🇽", "flag mexico"},
	{"🇳🇱", "flag netherlands"},
	{"🇳🇿", "flag new zealand"},
	{"🇸🇪", "flag sweden"},
	{"🇺🇸", "flag united states"},
}
