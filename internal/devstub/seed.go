package devstub

import "cantara-client/internal/models"

func seedAchievements() []models.Achievement {
	return []models.Achievement{
		{ID: 1, Name: "First Steps", Icon: "🎯", Description: "Answer your first question correctly.", Category: "quiz", ConditionType: "quiz_correct", ConditionValue: 1, Points: 10},
		{ID: 2, Name: "Getting Warmer", Icon: "🔥", Description: "Answer 10 questions correctly.", Category: "quiz", ConditionType: "quiz_correct", ConditionValue: 10, Points: 50},
		{ID: 3, Name: "On a Roll", Icon: "⚡", Description: "Answer 5 questions correctly in a row.", Category: "quiz", ConditionType: "quiz_streak", ConditionValue: 5, Points: 40},
		{ID: 4, Name: "Song Scholar", Icon: "🎓", Description: "Answer 50 questions correctly.", Category: "quiz", ConditionType: "quiz_correct", ConditionValue: 50, Points: 150},
		{ID: 5, Name: "First Spark", Icon: "🎵", Description: "Favorite your first song.", Category: "song", ConditionType: "favorite_songs", ConditionValue: 1, Points: 30},
		{ID: 6, Name: "Collector", Icon: "📀", Description: "Favorite 10 songs.", Category: "song", ConditionType: "favorite_songs", ConditionValue: 10, Points: 80},
		{ID: 7, Name: "Curious Reader", Icon: "📖", Description: "Read 5 heritage articles.", Category: "learn", ConditionType: "learn_articles", ConditionValue: 5, Points: 40},
		{ID: 8, Name: "First Composition", Icon: "✨", Description: "Compose your first song.", Category: "create", ConditionType: "create_songs", ConditionValue: 1, Points: 60},
		{ID: 9, Name: "Conversationalist", Icon: "📚", Description: "Chat with the heritage guide 10 times.", Category: "chat", ConditionType: "chat_messages", ConditionValue: 10, Points: 30},
		{ID: 10, Name: "First Voice", Icon: "💬", Description: "Post your first forum message.", Category: "forum", ConditionType: "forum_posts", ConditionValue: 1, Points: 40},
		{ID: 11, Name: "Point Hunter", Icon: "🌟", Description: "Accumulate 300 points.", Category: "total", ConditionType: "total_score", ConditionValue: 300, Points: 100},
		{ID: 12, Name: "Badge Collector", Icon: "🏅", Description: "Unlock 5 achievements.", Category: "total", ConditionType: "achievement_count", ConditionValue: 5, Points: 120},
	}
}

func seedQuestions() []seedQuestion {
	return []seedQuestion{
		{QuizQuestion: models.QuizQuestion{ID: 1, Question: "Which river is the subject of a famous choral cantata?", OptionA: "The Yellow River", OptionB: "The Pearl River", OptionC: "The Yangtze", OptionD: "The Amur", Difficulty: "easy", Points: 10, Explanation: "The Yellow River Cantata premiered in 1939."}, CorrectAnswer: "A"},
		{QuizQuestion: models.QuizQuestion{ID: 2, Question: "What does a cappella singing lack?", OptionA: "Melody", OptionB: "Instrumental accompaniment", OptionC: "Harmony", OptionD: "Rhythm", Difficulty: "easy", Points: 10, Explanation: "A cappella means voices alone."}, CorrectAnswer: "B"},
		{QuizQuestion: models.QuizQuestion{ID: 3, Question: "A song passed down orally across generations is called a what?", OptionA: "Aria", OptionB: "Anthem", OptionC: "Folk song", OptionD: "Serenade", Difficulty: "easy", Points: 10, Explanation: "Folk songs travel by ear, not by score."}, CorrectAnswer: "C"},
		{QuizQuestion: models.QuizQuestion{ID: 4, Question: "How many beats does a measure of 3/4 time hold?", OptionA: "Two", OptionB: "Four", OptionC: "Six", OptionD: "Three", Difficulty: "medium", Points: 20, Explanation: "The top number counts the beats."}, CorrectAnswer: "D"},
		{QuizQuestion: models.QuizQuestion{ID: 5, Question: "Which voice part usually carries the melody in a mixed choir?", OptionA: "Soprano", OptionB: "Bass", OptionC: "Tenor", OptionD: "Alto", Difficulty: "medium", Points: 20, Explanation: "Sopranos typically take the top line."}, CorrectAnswer: "A"},
		{QuizQuestion: models.QuizQuestion{ID: 6, Question: "A song written to rally people around a shared cause is best described as a what?", OptionA: "Lullaby", OptionB: "Anthem", OptionC: "Ballad", OptionD: "Nocturne", Difficulty: "medium", Points: 20, Explanation: "Anthems are songs of collective identity."}, CorrectAnswer: "B"},
		{QuizQuestion: models.QuizQuestion{ID: 7, Question: "Call-and-response is a structure where the leader sings and the group does what?", OptionA: "Hums quietly", OptionB: "Stays silent", OptionC: "Answers back", OptionD: "Claps only", Difficulty: "hard", Points: 30, Explanation: "The group answers the leader's phrase."}, CorrectAnswer: "C"},
		{QuizQuestion: models.QuizQuestion{ID: 8, Question: "Which term names the speed a song is performed at?", OptionA: "Timbre", OptionB: "Dynamics", OptionC: "Pitch", OptionD: "Tempo", Difficulty: "hard", Points: 30, Explanation: "Tempo is the pace of the music."}, CorrectAnswer: "D"},
	}
}

func seedSongs() []models.Song {
	return []models.Song{
		{ID: 1, Title: "Ode to the Yellow River", Artist: "Chorus of the Plains"},
		{ID: 2, Title: "Mountain Echoes", Artist: "Li Wen"},
		{ID: 3, Title: "Harvest Moon Round", Artist: "Village Ensemble"},
		{ID: 4, Title: "The Long Road Home", Artist: "Chen Yu"},
		{ID: 5, Title: "River of Stars", Artist: "Northern Voices"},
		{ID: 6, Title: "Song of the Ferrymen", Artist: "Delta Singers"},
		{ID: 7, Title: "Lanterns on the Water", Artist: "Mei Lin"},
	}
}

func seedVideos() []models.Video {
	return []models.Video{
		{ID: 1, Title: "How folk melodies travel", Summary: "A short history of oral transmission across provinces and generations."},
		{ID: 2, Title: "Inside a cantata rehearsal", Summary: "Behind the scenes with a hundred-voice choir preparing a premiere."},
		{ID: 3, Title: "Reading a folk score", Summary: "What notation keeps and what it loses when a song is written down."},
		{ID: 4, Title: "The work song tradition", Summary: "Why labor and rhythm shaped so many of the songs we still sing."},
	}
}
