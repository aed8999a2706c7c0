package glossary

// The dictionary table: rule vocabulary plus the fan slang that makes
// broadcasts and community posts readable for newcomers.
var terms = []Term{
	{ID: "1", Term: "스트라이크", Category: "기본", Definition: "타자가 치지 못했거나, 치기 좋은 공인데 안 쳤을 때 판정", Example: "3스트라이크로 삼진 아웃되었습니다.", Difficulty: Beginner},
	{ID: "2", Term: "볼", Category: "기본", Definition: "타자가 치기 어려운 공. 4개 누적되면 자동으로 1루 진루", Example: "볼넷으로 1루에 출루했습니다.", Difficulty: Beginner},
	{ID: "3", Term: "아웃", Category: "기본", Definition: "타자나 주자가 규칙에 따라 아웃 처리되는 것", Example: "플라이볼로 아웃되었습니다.", Difficulty: Beginner},
	{ID: "4", Term: "안타", Category: "타격", Definition: "공을 쳐서 베이스에 안전하게 도착하는 것 (1루 이상)", Example: "좌중간으로 깔끔한 안타를 쳤습니다.", Difficulty: Beginner},
	{ID: "5", Term: "홈런", Category: "타격", Definition: "담장을 넘겨 바로 홈까지 도는 타격", Example: "김민수가 3회에 2점 홈런을 쳤습니다.", Difficulty: Beginner},
	{ID: "6", Term: "도루", Category: "주루", Definition: "투수가 던질 때 주자가 다음 루로 몰래 뛰는 플레이", Example: "2루 도루에 성공했습니다.", Difficulty: Intermediate},
	{ID: "7", Term: "삼진", Category: "투수", Definition: "스트라이크 3개로 아웃되는 것", Example: "빠른 직구로 삼진을 잡았습니다.", Difficulty: Beginner},
	{ID: "8", Term: "병살", Category: "수비", Definition: "한 플레이로 2명 이상이 아웃되는 수비", Example: "6-4-3 병살로 위기를 넘겼습니다.", Difficulty: Intermediate},
	{ID: "9", Term: "타순", Category: "기본", Definition: "타자들이 타석에 나오는 순서 (1~9번)", Example: "4번 타자가 타석에 들어섰습니다.", Difficulty: Beginner},
	{ID: "10", Term: "이닝", Category: "기본", Definition: "한 팀이 공격과 수비를 한 차례씩 마친 단위 (보통 9이닝까지 진행)", Example: "7회말 공격이 시작됩니다.", Difficulty: Beginner},
	{ID: "11", Term: "타점", Category: "타격", Definition: "타자가 타격으로 주자를 홈으로 불러들인 점수", Example: "오늘 3타점을 기록했습니다.", Difficulty: Beginner},
	{ID: "12", Term: "마무리 투수", Category: "투수", Definition: "경기 마지막에 등판하여 승리를 확정짓는 투수", Example: "마무리 투수 이성민이 완벽하게 마무리했습니다.", Difficulty: Beginner},
	{ID: "13", Term: "평균자책점", Category: "투수", Definition: "투수가 9이닝 동안 내준 평균 실점 (ERA)", Example: "평균자책점 2.50으로 좋은 성적을 보이고 있습니다.", Difficulty: Intermediate},
	{ID: "14", Term: "고의사구", Category: "투수", Definition: "의도적으로 볼넷을 주어 타자를 1루로 보내는 것", Example: "강타자를 피해 고의사구를 선택했습니다.", Difficulty: Intermediate},
	{ID: "15", Term: "데드볼", Category: "투수", Definition: "투수가 던진 공이 타자의 몸에 맞는 것", Example: "데드볼로 1루에 출루했습니다.", Difficulty: Beginner},
	{ID: "16", Term: "스퀴즈", Category: "전술", Definition: "3루 주자가 있을 때 번트로 득점을 노리는 전술", Example: "스퀴즈 플레이로 동점을 만들었습니다.", Difficulty: Advanced},
	{ID: "17", Term: "불펜", Category: "은어", Definition: "선발 외 투수진 (중간계투, 마무리 등)", Example: "불펜 투수들이 좋은 활약을 보이고 있습니다.", Difficulty: Intermediate},
	{ID: "18", Term: "똥볼", Category: "은어", Definition: "느린 공 (속도는 느린데 타이밍 맞추기 어려움)", Example: "똥볼에 속아서 헛스윙했습니다.", Difficulty: Intermediate},
	{ID: "19", Term: "불방망이", Category: "은어", Definition: "타자들이 계속 안타·홈런을 치는 상태", Example: "오늘 우리 팀 타선이 불방망이네요!", Difficulty: Intermediate},
	{ID: "20", Term: "먹튀", Category: "은어", Definition: "고액 연봉인데 활약이 없는 선수", Example: "그 선수는 올 시즌 먹튀라는 소리를 듣고 있어요.", Difficulty: Intermediate},
	{ID: "21", Term: "먹방", Category: "은어", Definition: "타자들이 삼진만 당하고 타격이 안 되는 날", Example: "오늘 우리 팀 타선이 완전 먹방이네요.", Difficulty: Intermediate},
	{ID: "22", Term: "사사구", Category: "은어", Definition: "볼넷과 몸에 맞는 공 (타자가 공 안 쳐도 진루)", Example: "사사구로 출루 기회를 만들었습니다.", Difficulty: Intermediate},
	{ID: "23", Term: "퀄스", Category: "은어", Definition: "선발 투수가 6이닝 이상 던지고 3점 이하 실점한 경우 (QS)", Example: "오늘 선발투수가 퀄스를 기록했습니다.", Difficulty: Advanced},
	{ID: "24", Term: "타이밍 안 맞음", Category: "은어", Definition: "스윙 타이밍이 늦거나 빨라서 공을 제대로 못 침", Example: "계속 타이밍이 안 맞아서 헛스윙하고 있어요.", Difficulty: Intermediate},
	{ID: "25", Term: "K", Category: "은어", Definition: "삼진을 뜻하는 기호 (삼진 3개는 KKK)", Example: "오늘 투수가 10K를 기록했습니다.", Difficulty: Intermediate},
	{ID: "26", Term: "초구딱", Category: "은어", Definition: "첫 번째 공을 바로 쳐서 안타나 홈런을 치는 것", Example: "초구딱으로 홈런을 날렸습니다!", Difficulty: Intermediate},
	{ID: "27", Term: "떨공삼", Category: "은어", Definition: "떨어지는 공으로 삼진을 당하는 것 (변화구에 속음)", Example: "슬라이더에 완전히 속아서 떨공삼 당했네요.", Difficulty: Intermediate},
	{ID: "28", Term: "몸빵", Category: "은어", Definition: "몸으로 공을 맞아서 출루하는 것 (데드볼)", Example: "몸빵으로 출루 기회를 만들었습니다.", Difficulty: Intermediate},
	{ID: "29", Term: "깜놀", Category: "은어", Definition: "깜짝 놀랄 만한 플레이나 결과", Example: "신인이 첫 타석에서 홈런? 완전 깜놀이네요!", Difficulty: Intermediate},
	{ID: "30", Term: "뻥튀기", Category: "은어", Definition: "높이 뜬 플라이볼 (쉬운 아웃)", Example: "뻥튀기로 쉽게 아웃되었습니다.", Difficulty: Intermediate},
	{ID: "31", Term: "땅볼머신", Category: "은어", Definition: "땅볼만 치는 타자 (안타가 잘 안 나오는 타자)", Example: "오늘 완전 땅볼머신이 되었네요.", Difficulty: Intermediate},
	{ID: "32", Term: "삼진머신", Category: "은어", Definition: "삼진을 많이 당하는 타자", Example: "요즘 삼진머신이 되어서 고민이에요.", Difficulty: Intermediate},
	{ID: "33", Term: "폭탄", Category: "은어", Definition: "투수가 많은 실점을 하는 것", Example: "선발투수가 3회에 폭탄을 맞았습니다.", Difficulty: Intermediate},
	{ID: "34", Term: "노가다", Category: "은어", Definition: "힘들게 점수를 내는 것 (소량 득점)", Example: "오늘은 노가다로 1점씩 따내고 있어요.", Difficulty: Intermediate},
	{ID: "35", Term: "뒷심", Category: "은어", Definition: "후반 이닝에서 보여주는 집중력과 실력", Example: "우리 팀은 뒷심이 좋아서 역전 가능성이 있어요.", Difficulty: Intermediate},
	{ID: "36", Term: "꿀빨", Category: "은어", Definition: "매우 쉬운 상대나 경기 (꿀을 빨듯 쉬움)", Example: "오늘 상대 투수는 완전 꿀빨이네요.", Difficulty: Intermediate},
	{ID: "37", Term: "똥망", Category: "은어", Definition: "경기나 선수가 완전히 망친 상태", Example: "선발투수가 1회에 5실점으로 똥망했네요.", Difficulty: Intermediate},
	{ID: "38", Term: "쫄리게", Category: "은어", Definition: "긴장되고 조마조마하게", Example: "9회말 1점차 게임이라 쫄리게 보고 있어요.", Difficulty: Intermediate},
	{ID: "39", Term: "갓투수", Category: "은어", Definition: "신과 같은 실력을 보여주는 투수", Example: "오늘 선발은 완전 갓투수네요!", Difficulty: Intermediate},
	{ID: "40", Term: "갓타자", Category: "은어", Definition: "신과 같은 실력을 보여주는 타자", Example: "4타수 4안타? 완전 갓타자입니다!", Difficulty: Intermediate},
	{ID: "41", Term: "레전드", Category: "은어", Definition: "전설적인 플레이나 기록", Example: "노히터 달성? 완전 레전드네요!", Difficulty: Intermediate},
	{ID: "42", Term: "명경기", Category: "은어", Definition: "매우 흥미진진하고 기억에 남을 만한 경기", Example: "연장 12회까지 간 명경기였어요!", Difficulty: Intermediate},
	{ID: "43", Term: "흔들림", Category: "은어", Definition: "투수나 선수가 실수를 연발하며 불안한 모습", Example: "마무리 투수가 흔들리고 있어요.", Difficulty: Intermediate},
	{ID: "44", Term: "작품", Category: "은어", Definition: "예술적이고 완벽한 플레이나 경기", Example: "오늘 투수의 피칭은 완전 작품이었어요!", Difficulty: Intermediate},
	{ID: "45", Term: "역전포", Category: "은어", Definition: "역전 가능성이 있는 포수 (캐처)", Example: "9회말 2아웃 만루, 역전포가 타석에 들어섰습니다!", Difficulty: Intermediate},
	{ID: "46", Term: "빈볼", Category: "은어", Definition: "타자를 겨냥해서 던지는 위험한 공", Example: "보복성 빈볼을 던졌다는 의혹이 있어요.", Difficulty: Intermediate},
	{ID: "47", Term: "콜드게임", Category: "은어", Definition: "5회 이후 10점 이상 차이로 경기가 조기 종료되는 것", Example: "15-2로 콜드게임이 선언되었습니다.", Difficulty: Intermediate},
	{ID: "48", Term: "워킹", Category: "은어", Definition: "볼넷 (4볼로 걸어서 1루로 가는 것)", Example: "연속 워킹으로 만루가 되었어요.", Difficulty: Intermediate},
	{ID: "49", Term: "클린업", Category: "은어", Definition: "3-4-5번 타자 (주축 타자들)", Example: "클린업 트리오가 모두 홈런을 쳤어요!", Difficulty: Intermediate},
	{ID: "50", Term: "백투백", Category: "은어", Definition: "연속 홈런 (등등 맞대고 홈런)", Example: "백투백 홈런으로 분위기를 뒤집었어요!", Difficulty: Intermediate},
}
