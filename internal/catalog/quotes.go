package catalog

import "nathanbeddoewebdev/taoquotes/internal/domain"

// quotes is the compiled-in catalog, in display order.
var quotes = []domain.Quote{
	{ID: "ttc-1", Text: "The Tao that can be told is not the eternal Tao. The name that can be named is not the eternal name.", Source: "Lao Tzu", Chapter: "Tao Te Ching, Chapter 1"},
	{ID: "ttc-2", Text: "When people see some things as beautiful, other things become ugly. When people see some things as good, other things become bad.", Source: "Lao Tzu", Chapter: "Tao Te Ching, Chapter 2"},
	{ID: "ttc-3", Text: "The Tao is like a well: used but never used up. It is like the eternal void: filled with infinite possibilities.", Source: "Lao Tzu", Chapter: "Tao Te Ching, Chapter 4"},
	{ID: "ttc-4", Text: "The supreme good is like water, which nourishes all things without trying to. It flows to low places loathed by all men. Therefore, it is like the Tao.", Source: "Lao Tzu", Chapter: "Tao Te Ching, Chapter 8"},
	{ID: "ttc-5", Text: "Fill your bowl to the brim and it will spill. Keep sharpening your knife and it will blunt.", Source: "Lao Tzu", Chapter: "Tao Te Ching, Chapter 9"},
	{ID: "ttc-6", Text: "We shape clay into a pot, but it is the emptiness inside that holds whatever we want.", Source: "Lao Tzu", Chapter: "Tao Te Ching, Chapter 11"},
	{ID: "ttc-7", Text: "Colors blind the eye. Sounds deafen the ear. Flavors numb the taste. Racing and hunting madden the mind.", Source: "Lao Tzu", Chapter: "Tao Te Ching, Chapter 12"},
	{ID: "ttc-8", Text: "Accept disgrace willingly. Accept misfortune as the human condition.", Source: "Lao Tzu", Chapter: "Tao Te Ching, Chapter 13"},
	{ID: "ttc-9", Text: "Look, and it can't be seen. Listen, and it can't be heard. Reach, and it can't be grasped.", Source: "Lao Tzu", Chapter: "Tao Te Ching, Chapter 14"},
	{ID: "ttc-10", Text: "The ancient Masters were profound and subtle. Their wisdom was unfathomable.", Source: "Lao Tzu", Chapter: "Tao Te Ching, Chapter 15"},
	{ID: "ttc-11", Text: "Empty your mind of all thoughts. Let your heart be at peace.", Source: "Lao Tzu", Chapter: "Tao Te Ching, Chapter 16"},
	{ID: "ttc-12", Text: "When the great Tao is forgotten, kindness and morality arise.", Source: "Lao Tzu", Chapter: "Tao Te Ching, Chapter 18"},
	{ID: "ttc-13", Text: "Throw away holiness and wisdom, and people will be a hundred times happier.", Source: "Lao Tzu", Chapter: "Tao Te Ching, Chapter 19"},
	{ID: "ttc-14", Text: "Stop thinking, and end your problems.", Source: "Lao Tzu", Chapter: "Tao Te Ching, Chapter 20"},
	{ID: "ttc-15", Text: "The Master keeps her mind always at one with the Tao; that is what gives her radiance.", Source: "Lao Tzu", Chapter: "Tao Te Ching, Chapter 21"},
	{ID: "ttc-16", Text: "If you want to become whole, let yourself be partial. If you want to become straight, let yourself be crooked.", Source: "Lao Tzu", Chapter: "Tao Te Ching, Chapter 22"},
	{ID: "ttc-17", Text: "Express yourself completely, then keep quiet. Be like the forces of nature.", Source: "Lao Tzu", Chapter: "Tao Te Ching, Chapter 23"},
	{ID: "ttc-18", Text: "He who stands on tiptoe doesn't stand firm. He who rushes ahead doesn't go far.", Source: "Lao Tzu", Chapter: "Tao Te Ching, Chapter 24"},
	{ID: "ttc-19", Text: "There was something formless and perfect before the universe was born. It is serene. Empty. Solitary. Unchanging. Infinite. Eternally present.", Source: "Lao Tzu", Chapter: "Tao Te Ching, Chapter 25"},
	{ID: "ttc-20", Text: "The heavy is the root of the light. The still is the master of unrest.", Source: "Lao Tzu", Chapter: "Tao Te Ching, Chapter 26"},
	{ID: "ttc-21", Text: "A good traveler has no fixed plans and is not intent upon arriving.", Source: "Lao Tzu", Chapter: "Tao Te Ching, Chapter 27"},
	{ID: "ttc-22", Text: "Know the male, yet keep to the female: receive the world in your arms.", Source: "Lao Tzu", Chapter: "Tao Te Ching, Chapter 28"},
	{ID: "ttc-27", Text: "Knowing others is intelligence; knowing yourself is true wisdom. Mastering others is strength; mastering yourself is true power.", Source: "Lao Tzu", Chapter: "Tao Te Ching, Chapter 33"},
	{ID: "ttc-31", Text: "The Tao never does anything, yet through it all things are done.", Source: "Lao Tzu", Chapter: "Tao Te Ching, Chapter 37"},
	{ID: "ttc-36", Text: "The Tao gives birth to One. One gives birth to Two. Two gives birth to Three. Three gives birth to all things.", Source: "Lao Tzu", Chapter: "Tao Te Ching, Chapter 42"},
	{ID: "ttc-37", Text: "The softest thing in the universe overcomes the hardest thing in the universe.", Source: "Lao Tzu", Chapter: "Tao Te Ching, Chapter 43"},
	{ID: "ttc-42", Text: "In pursuit of learning, every day something is acquired. In pursuit of Tao, every day something is dropped.", Source: "Lao Tzu", Chapter: "Tao Te Ching, Chapter 48"},
	{ID: "ttc-50", Text: "Those who know don't talk. Those who talk don't know.", Source: "Lao Tzu", Chapter: "Tao Te Ching, Chapter 56"},
	{ID: "ttc-59", Text: "A journey of a thousand miles starts under one's feet.", Source: "Lao Tzu", Chapter: "Tao Te Ching, Chapter 64"},
	{ID: "ttc-62", Text: "I have just three things to teach: simplicity, patience, compassion. These three are your greatest treasures.", Source: "Lao Tzu", Chapter: "Tao Te Ching, Chapter 67"},
	{ID: "ttc-66", Text: "Not-knowing is true knowledge. Presuming to know is a disease.", Source: "Lao Tzu", Chapter: "Tao Te Ching, Chapter 71"},
	{ID: "ttc-73", Text: "Nothing in the world is as soft and yielding as water. Yet for dissolving the hard and inflexible, nothing can surpass it.", Source: "Lao Tzu", Chapter: "Tao Te Ching, Chapter 78"},
	{ID: "ttc-75", Text: "True words aren't eloquent; eloquent words aren't true. Wise men don't need to prove their point; men who need to prove their point aren't wise.", Source: "Lao Tzu", Chapter: "Tao Te Ching, Chapter 81"},
	{ID: "zz-1", Text: "Happiness is the absence of the striving for happiness.", Source: "Zhuangzi"},
	{ID: "zz-2", Text: "Flow with whatever may happen and let your mind be free. Stay centered by accepting whatever you are doing. This is the ultimate.", Source: "Zhuangzi"},
	{ID: "zz-3", Text: "The fish trap exists because of the fish. Once you've gotten the fish you can forget the trap.", Source: "Zhuangzi"},
	{ID: "zz-4", Text: "The wise man knows that it is better to sit on the banks of a remote mountain stream than to be emperor of the whole world.", Source: "Zhuangzi"},
	{ID: "zz-5", Text: "Great wisdom is generous; petty wisdom is contentious.", Source: "Zhuangzi"},
	{ID: "zz-6", Text: "We cling to our own point of view, as though everything depended on it. Yet our opinions have no permanence.", Source: "Zhuangzi"},
	{ID: "zz-8", Text: "The perfect man has no self; the spiritual man has no achievement; the true sage has no name.", Source: "Zhuangzi"},
	{ID: "zz-9", Text: "Once upon a time, I dreamt I was a butterfly, fluttering hither and thither. Suddenly I awakened. Now I do not know whether I was then a man dreaming I was a butterfly, or whether I am now a butterfly dreaming I am a man.", Source: "Zhuangzi"},
	{ID: "zz-10", Text: "When the shoe fits, the foot is forgotten; when the belt fits, the belly is forgotten.", Source: "Zhuangzi"},
	{ID: "zz-13", Text: "To a mind that is still, the whole universe surrenders.", Source: "Zhuangzi"},
	{ID: "zz-18", Text: "Do not seek fame. Do not make plans. Do not be absorbed by activities. Do not think that you know. Be aware of all that is and dwell in the infinite.", Source: "Zhuangzi"},
	{ID: "zz-20", Text: "A path is made by walking on it.", Source: "Zhuangzi"},
	{ID: "lz-1", Text: "The mind of the perfect man is like a mirror. It grasps nothing. It expects nothing. It reflects but does not hold.", Source: "Liezi"},
	{ID: "lz-3", Text: "Tao is beyond words and beyond understanding. Words may be used to speak of it, but they cannot contain it.", Source: "Liezi"},
	{ID: "tw-1", Text: "Nature does not hurry, yet everything is accomplished.", Source: "Lao Tzu"},
	{ID: "tw-2", Text: "Be still like a mountain and flow like a great river.", Source: "Lao Tzu"},
	{ID: "tw-3", Text: "Life is a series of natural and spontaneous changes. Don't resist them; that only creates sorrow. Let reality be reality.", Source: "Lao Tzu"},
	{ID: "tw-4", Text: "Care about what other people think and you will always be their prisoner.", Source: "Lao Tzu"},
	{ID: "tw-5", Text: "When I let go of what I am, I become what I might be.", Source: "Lao Tzu"},
	{ID: "tw-6", Text: "He who controls others may be powerful, but he who has mastered himself is mightier still.", Source: "Lao Tzu"},
	{ID: "tw-7", Text: "At the center of your being you have the answer; you know who you are and you know what you want.", Source: "Lao Tzu"},
	{ID: "tw-8", Text: "Silence is a source of great strength.", Source: "Lao Tzu"},
	{ID: "tw-9", Text: "If you are depressed you are living in the past. If you are anxious you are living in the future. If you are at peace you are living in the present.", Source: "Lao Tzu"},
	{ID: "tw-10", Text: "The snow goose need not bathe to make itself white. Neither need you do anything but be yourself.", Source: "Lao Tzu"},
	{ID: "tw-12", Text: "If you correct your mind, the rest of your life will fall into place.", Source: "Lao Tzu"},
	{ID: "tw-13", Text: "To attain knowledge, add things every day. To attain wisdom, remove things every day.", Source: "Lao Tzu"},
	{ID: "tw-14", Text: "Health is the greatest possession. Contentment is the greatest treasure. Confidence is the greatest friend.", Source: "Lao Tzu"},
}
